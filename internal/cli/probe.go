package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/bibfact/internal/cache"
	"github.com/ppiankov/bibfact/internal/llm"
	"github.com/ppiankov/bibfact/internal/model"
	"github.com/ppiankov/bibfact/internal/store"
	"github.com/ppiankov/bibfact/internal/worker"
)

var (
	probeDBURL       string
	probeSchema      string
	probeTask        string
	probeProvider    string
	probeModel       string
	probeConcurrency int
	probeTimeout     time.Duration
	probeNoCache     bool
)

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Ask the model the pending bibliographic questions",
	Long: `Probe finds rows in the factuality_* tables whose answer text is still
empty, asks the configured LLM provider each question concurrently, and
stores the raw answers back. Ground-truth fact flags are resolved by a
separate process; probe only fills the text that scoring later reads.

Answers are cached by provider, model, and prompt so interrupted sweeps
resume without repeating paid requests.

Example:
  bibfact probe --provider openai --model gpt-4o-mini
  bibfact probe --task epoch --provider ollama --model llama3.1:8b
  bibfact probe --concurrency 8 --no-cache`,
	Args: cobra.NoArgs,
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)

	probeCmd.Flags().StringVar(&probeDBURL, "db", "", "postgres connection string (overrides config)")
	probeCmd.Flags().StringVar(&probeSchema, "schema", "", "database schema (overrides config)")
	probeCmd.Flags().StringVar(&probeTask, "task", "all", "task to probe (author, field, epoch, seniority, all)")
	probeCmd.Flags().StringVar(&probeProvider, "provider", "", "LLM provider (openai, ollama; overrides config)")
	probeCmd.Flags().StringVar(&probeModel, "model", "", "LLM model name (overrides config)")
	probeCmd.Flags().IntVar(&probeConcurrency, "concurrency", 0, "number of concurrent probe requests (overrides config)")
	probeCmd.Flags().DurationVar(&probeTimeout, "timeout", 30*time.Minute, "total timeout for the probe sweep")
	probeCmd.Flags().BoolVar(&probeNoCache, "no-cache", false, "disable the answer cache")
}

func probeTasks() ([]model.Task, error) {
	switch probeTask {
	case "all":
		return []model.Task{model.TaskAuthor, model.TaskField, model.TaskEpoch, model.TaskSeniority}, nil
	case "author":
		return []model.Task{model.TaskAuthor}, nil
	case "field":
		return []model.Task{model.TaskField}, nil
	case "epoch":
		return []model.Task{model.TaskEpoch}, nil
	case "seniority":
		return []model.Task{model.TaskSeniority}, nil
	default:
		return nil, fmt.Errorf("unknown task %q (expected author, field, epoch, seniority, all)", probeTask)
	}
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if probeDBURL != "" {
		cfg.Database.URL = probeDBURL
	}
	if probeSchema != "" {
		cfg.Database.Schema = probeSchema
	}
	if probeProvider != "" {
		cfg.LLM.Provider = probeProvider
	}
	if probeModel != "" {
		cfg.LLM.Model = probeModel
	}
	if probeConcurrency > 0 {
		cfg.Concurrency.ProbeWorkers = probeConcurrency
	}

	tasks, err := probeTasks()
	if err != nil {
		return err
	}

	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return err
	}
	if provider == nil {
		return fmt.Errorf("no LLM provider configured (set llm.provider or pass --provider)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	if !provider.IsAvailable(ctx) {
		return fmt.Errorf("LLM provider %s is not available", provider.Name())
	}

	pg, err := store.Connect(ctx, cfg.Database.URL, cfg.Database.Schema)
	if err != nil {
		return err
	}
	defer pg.Close()

	var answerCache cache.Cache
	cacheTTL := time.Duration(cfg.Cache.TTL) * time.Hour
	if cfg.Cache.Enabled && !probeNoCache {
		if cfg.Cache.Dir != "" {
			answerCache = cache.NewDiskCache(cfg.Cache.Dir, cacheTTL)
		} else {
			answerCache = cache.NewMemoryCache(cacheTTL, time.Hour)
		}
	}

	limiter := worker.NewLimiter(cfg.Concurrency.RequestsPerSecond, cfg.Concurrency.Burst)
	processor := worker.NewBatchProcessor(provider, cfg.LLM.Model, limiter, answerCache, cacheTTL,
		cfg.Concurrency.ProbeWorkers)

	for _, task := range tasks {
		rows, err := pg.LoadPendingProbes(ctx, task)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Fprintf(os.Stderr, "  %-10s nothing pending\n", task)
			continue
		}

		results := processor.ProcessRows(ctx, rows)

		answered, cached, failed := 0, 0, 0
		for _, r := range results {
			if r.Error != nil {
				failed++
				if verbose {
					fmt.Fprintf(os.Stderr, "  %s/%d: %v\n", task, r.Row.ID, r.Error)
				}
				continue
			}
			if err := pg.SaveAnswer(ctx, task, r.Row.ID, r.Answer); err != nil {
				return err
			}
			answered++
			if r.Cached {
				cached++
			}
		}

		fmt.Fprintf(os.Stderr, "  %-10s %d answered (%d from cache), %d failed\n",
			task, answered, cached, failed)
	}

	return nil
}
