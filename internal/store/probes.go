package store

import (
	"context"
	"fmt"

	"github.com/ppiankov/bibfact/internal/model"
)

// ProbeRow is one question still waiting for a model answer
type ProbeRow struct {
	Task   model.Task
	ID     int64
	Prompt string
}

func tableFor(task model.Task) (string, error) {
	switch task {
	case model.TaskAuthor:
		return authorTable, nil
	case model.TaskField:
		return fieldTable, nil
	case model.TaskEpoch:
		return epochTable, nil
	case model.TaskSeniority:
		return seniorityTable, nil
	default:
		return "", fmt.Errorf("unknown task %q", task)
	}
}

// answerColumn names where the model's free-text answer lives. The epoch
// task stores it in years because that is the column the extractor scans.
func answerColumn(task model.Task) string {
	if task == model.TaskEpoch {
		return "years"
	}
	return "answer"
}

// LoadPendingProbes returns the rows of a task table that have no answer
// text yet, ordered by id for stable batching.
func (s *Postgres) LoadPendingProbes(ctx context.Context, task model.Task) ([]ProbeRow, error) {
	table, err := tableFor(task)
	if err != nil {
		return nil, err
	}
	ref, err := s.qualified(table)
	if err != nil {
		return nil, err
	}
	col, err := quoteIdent(answerColumn(task))
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		SELECT id, task_param
		FROM %s
		WHERE %s IS NULL
		ORDER BY id
	`, ref, col)

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load pending %s: %w", table, err)
	}
	defer rows.Close()

	var out []ProbeRow
	for rows.Next() {
		r := ProbeRow{Task: task}
		if err := rows.Scan(&r.ID, &r.Prompt); err != nil {
			return nil, fmt.Errorf("scan pending %s: %w", table, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load pending %s: %w", table, err)
	}
	return out, nil
}

// SaveAnswer stores the model's answer text for one row
func (s *Postgres) SaveAnswer(ctx context.Context, task model.Task, id int64, answer string) error {
	table, err := tableFor(task)
	if err != nil {
		return err
	}
	ref, err := s.qualified(table)
	if err != nil {
		return err
	}
	col, err := quoteIdent(answerColumn(task))
	if err != nil {
		return err
	}

	q := fmt.Sprintf("UPDATE %s SET %s = $1 WHERE id = $2", ref, col)
	tag, err := s.pool.Exec(ctx, q, answer, id)
	if err != nil {
		return fmt.Errorf("save answer %s/%d: %w", table, id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("save answer %s/%d: row not found", table, id)
	}
	return nil
}
