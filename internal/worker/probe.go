package worker

import (
	"context"
	"time"

	"github.com/ppiankov/bibfact/internal/cache"
	"github.com/ppiankov/bibfact/internal/llm"
	"github.com/ppiankov/bibfact/internal/store"
)

// ProbeJob asks the provider one pending question
type ProbeJob struct {
	Row      store.ProbeRow
	Provider llm.Provider
	Model    string
	Limiter  *Limiter
	Cache    cache.Cache // nil disables caching
	CacheTTL time.Duration
}

// Execute executes the probe job
func (j *ProbeJob) Execute(ctx context.Context) Result {
	key := cache.AnswerKey(j.Provider.Name(), j.Model, j.Row.Prompt)

	if j.Cache != nil {
		if cached, found := j.Cache.Get(key); found {
			return &ProbeResult{Row: j.Row, Answer: string(cached), Cached: true}
		}
	}

	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.Provider.Name()); err != nil {
			return &ProbeResult{Row: j.Row, Error: err}
		}
	}

	resp, err := j.Provider.Answer(ctx, llm.AnswerRequest{Prompt: j.Row.Prompt, Model: j.Model})
	if err != nil {
		return &ProbeResult{Row: j.Row, Error: err}
	}

	if j.Cache != nil {
		_ = j.Cache.Set(key, []byte(resp.Answer), j.CacheTTL)
	}

	return &ProbeResult{Row: j.Row, Answer: resp.Answer, TokensUsed: resp.TokensUsed}
}

// ProbeResult represents the result of a probe job
type ProbeResult struct {
	Row        store.ProbeRow
	Answer     string
	Cached     bool
	TokensUsed int
	Error      error
}

// GetError returns the error from the probe result
func (r *ProbeResult) GetError() error {
	return r.Error
}

// BatchProcessor probes multiple pending rows concurrently
type BatchProcessor struct {
	provider    llm.Provider
	model       string
	limiter     *Limiter
	cache       cache.Cache
	cacheTTL    time.Duration
	concurrency int
}

// NewBatchProcessor creates a new batch processor. A nil cache disables
// answer memoization; an empty model uses the provider's configured one.
func NewBatchProcessor(provider llm.Provider, model string, limiter *Limiter, answerCache cache.Cache, cacheTTL time.Duration, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		provider:    provider,
		model:       model,
		limiter:     limiter,
		cache:       answerCache,
		cacheTTL:    cacheTTL,
		concurrency: concurrency,
	}
}

// ProcessRows probes the given rows concurrently
func (b *BatchProcessor) ProcessRows(ctx context.Context, rows []store.ProbeRow) []*ProbeResult {
	if len(rows) == 0 {
		return []*ProbeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, row := range rows {
		pool.Submit(&ProbeJob{
			Row:      row,
			Provider: b.provider,
			Model:    b.model,
			Limiter:  b.limiter,
			Cache:    b.cache,
			CacheTTL: b.cacheTTL,
		})
	}

	results := pool.Wait()

	probeResults := make([]*ProbeResult, len(results))
	for i, result := range results {
		probeResults[i] = result.(*ProbeResult)
	}
	return probeResults
}
