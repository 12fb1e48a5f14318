// Package pipeline wires the factuality run: load records, filter to valid
// rows, derive per-task flags, aggregate rates, persist the result tables.
package pipeline

import (
	"context"
	"fmt"

	"github.com/ppiankov/bibfact/internal/model"
	"github.com/ppiankov/bibfact/internal/score"
)

// RecordSource loads the four input tables
type RecordSource interface {
	LoadAuthorRecords(ctx context.Context) ([]model.AuthorRecord, error)
	LoadFieldRecords(ctx context.Context) ([]model.FieldRecord, error)
	LoadEpochRecords(ctx context.Context) ([]model.EpochRecord, error)
	LoadSeniorityRecords(ctx context.Context) ([]model.SeniorityRecord, error)
}

// ResultSink persists one-row result tables
type ResultSink interface {
	WriteResultTable(ctx context.Context, table *model.ResultTable) error
}

// Pipeline orchestrates the complete scoring run
type Pipeline struct {
	source RecordSource
	sink   ResultSink
	epochs *score.EpochDeriver
}

// NewPipeline creates a new pipeline over a record source and result sink
func NewPipeline(source RecordSource, sink ResultSink) *Pipeline {
	return &Pipeline{
		source: source,
		sink:   sink,
		epochs: score.NewEpochDeriver(),
	}
}

// TaskCount reports how many rows a task loaded and how many were scorable
type TaskCount struct {
	Task   model.Task
	Loaded int
	Valid  int
}

// RunResult contains the four result tables and per-task row counts
type RunResult struct {
	Tables []*model.ResultTable
	Counts []TaskCount
}

// Run executes one batch scoring run. Everything is recomputed fresh from
// the current record set; a load failure for any task aborts the run
// before anything is written.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	result := &RunResult{}

	// 1. Author task: existence answers grouped by task name
	authorRecords, err := p.source.LoadAuthorRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load author records: %w", err)
	}
	authorValid := score.FilterValid(authorRecords)
	result.Tables = append(result.Tables, score.AuthorTable(score.DeriveAuthor(authorValid)))
	result.Counts = append(result.Counts, TaskCount{model.TaskAuthor, len(authorRecords), len(authorValid)})

	// 2. Field task: publication field correctness
	fieldRecords, err := p.source.LoadFieldRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load field records: %w", err)
	}
	fieldValid := score.FilterValid(fieldRecords)
	result.Tables = append(result.Tables, score.FieldTable(score.DeriveField(fieldValid)))
	result.Counts = append(result.Counts, TaskCount{model.TaskField, len(fieldRecords), len(fieldValid)})

	// 3. Epoch task: decade agreement via year extraction + classification
	epochRecords, err := p.source.LoadEpochRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load epoch records: %w", err)
	}
	epochValid := score.FilterValid(epochRecords)
	result.Tables = append(result.Tables, score.EpochTable(p.epochs.Derive(epochValid)))
	result.Counts = append(result.Counts, TaskCount{model.TaskEpoch, len(epochRecords), len(epochValid)})

	// 4. Seniority task: level agreement in both temporal frames
	seniorityRecords, err := p.source.LoadSeniorityRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load seniority records: %w", err)
	}
	seniorityValid := score.FilterValid(seniorityRecords)
	result.Tables = append(result.Tables, score.SeniorityTable(score.DeriveSeniority(seniorityValid)))
	result.Counts = append(result.Counts, TaskCount{model.TaskSeniority, len(seniorityRecords), len(seniorityValid)})

	// 5. Persist only after every task computed, so a failed run leaves no
	// partial output
	if p.sink != nil {
		for _, table := range result.Tables {
			if err := p.sink.WriteResultTable(ctx, table); err != nil {
				return nil, fmt.Errorf("write %s: %w", table.Name, err)
			}
		}
	}

	return result, nil
}
