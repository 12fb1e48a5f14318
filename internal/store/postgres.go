// Package store reads the factuality record tables from postgres and
// writes the aggregate result tables back.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ppiankov/bibfact/internal/model"
)

// Input table names, one per question type
const (
	authorTable    = "factuality_author"
	fieldTable     = "factuality_field"
	epochTable     = "factuality_epoch"
	seniorityTable = "factuality_seniority"
)

// Postgres is the record store. All queries are schema-qualified; the same
// schema holds the factuality_* inputs and the *_factuality results.
type Postgres struct {
	pool   *pgxpool.Pool
	schema string
}

// Connect opens a pooled connection and verifies it
func Connect(ctx context.Context, url, schema string) (*Postgres, error) {
	if url == "" {
		return nil, fmt.Errorf("database URL is required")
	}
	if schema == "" {
		schema = "public"
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &Postgres{pool: pool, schema: schema}, nil
}

// Close releases the connection pool
func (s *Postgres) Close() {
	s.pool.Close()
}

func quoteIdent(ident string) (string, error) {
	ident = strings.TrimSpace(ident)
	if ident == "" {
		return "", fmt.Errorf("empty identifier")
	}
	for _, r := range ident {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			continue
		}
		return "", fmt.Errorf("invalid identifier %q", ident)
	}
	return `"` + ident + `"`, nil
}

// qualified returns a quoted schema.table reference
func (s *Postgres) qualified(table string) (string, error) {
	schema, err := quoteIdent(s.schema)
	if err != nil {
		return "", fmt.Errorf("schema: %w", err)
	}
	tbl, err := quoteIdent(table)
	if err != nil {
		return "", fmt.Errorf("table: %w", err)
	}
	return schema + "." + tbl, nil
}

// LoadAuthorRecords reads the author-existence answer table. A missing
// table or column fails the load; nothing is scored for that run.
func (s *Postgres) LoadAuthorRecords(ctx context.Context) ([]model.AuthorRecord, error) {
	ref, err := s.qualified(authorTable)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		SELECT task_name, task_param, result_valid_flag, id_author_oa, is_in_aps
		FROM %s
	`, ref)

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", authorTable, err)
	}
	defer rows.Close()

	var out []model.AuthorRecord
	for rows.Next() {
		var r model.AuthorRecord
		if err := rows.Scan(&r.TaskName, &r.TaskParam, &r.ResultValid, &r.AuthorID, &r.IsInAPS); err != nil {
			return nil, fmt.Errorf("scan %s: %w", authorTable, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", authorTable, err)
	}
	return out, nil
}

// LoadFieldRecords reads the publication-field answer table
func (s *Postgres) LoadFieldRecords(ctx context.Context) ([]model.FieldRecord, error) {
	ref, err := s.qualified(fieldTable)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		SELECT task_param, result_valid_flag, id_author_oa, id_publication_aps, fact_doi_author_field
		FROM %s
	`, ref)

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", fieldTable, err)
	}
	defer rows.Close()

	var out []model.FieldRecord
	for rows.Next() {
		var r model.FieldRecord
		if err := rows.Scan(&r.TaskParam, &r.ResultValid, &r.AuthorID, &r.PublicationID, &r.DOIAuthorField); err != nil {
			return nil, fmt.Errorf("scan %s: %w", fieldTable, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", fieldTable, err)
	}
	return out, nil
}

// LoadEpochRecords reads the decade-agreement answer table
func (s *Postgres) LoadEpochRecords(ctx context.Context) ([]model.EpochRecord, error) {
	ref, err := s.qualified(epochTable)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		SELECT task_param, result_valid_flag, id_author_oa, fact_epoch_requested, years
		FROM %s
	`, ref)

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", epochTable, err)
	}
	defer rows.Close()

	var out []model.EpochRecord
	for rows.Next() {
		var r model.EpochRecord
		if err := rows.Scan(&r.TaskParam, &r.ResultValid, &r.AuthorID, &r.EpochRequested, &r.Years); err != nil {
			return nil, fmt.Errorf("scan %s: %w", epochTable, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", epochTable, err)
	}
	return out, nil
}

// LoadSeniorityRecords reads the seniority-level answer table
func (s *Postgres) LoadSeniorityRecords(ctx context.Context) ([]model.SeniorityRecord, error) {
	ref, err := s.qualified(seniorityTable)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		SELECT task_param, result_valid_flag, id_author_oa,
		       fact_seniority_active_requested, fact_seniority_now_requested,
		       fact_seniority_active, fact_seniority_now
		FROM %s
	`, ref)

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", seniorityTable, err)
	}
	defer rows.Close()

	var out []model.SeniorityRecord
	for rows.Next() {
		var r model.SeniorityRecord
		if err := rows.Scan(&r.TaskParam, &r.ResultValid, &r.AuthorID,
			&r.ActiveRequested, &r.NowRequested, &r.ActiveText, &r.NowText); err != nil {
			return nil, fmt.Errorf("scan %s: %w", seniorityTable, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", seniorityTable, err)
	}
	return out, nil
}

// WriteResultTable replaces a one-row result table. Columns are created as
// double precision; undefined rates persist as NULL so they stay distinct
// from 0.0.
func (s *Postgres) WriteResultTable(ctx context.Context, table *model.ResultTable) error {
	if len(table.Columns) == 0 {
		return fmt.Errorf("result table %s has no columns", table.Name)
	}

	ref, err := s.qualified(table.Name)
	if err != nil {
		return err
	}

	cols := make([]string, len(table.Columns))
	defs := make([]string, len(table.Columns))
	params := make([]string, len(table.Columns))
	args := make([]any, len(table.Columns))
	for i, c := range table.Columns {
		quoted, err := quoteIdent(c)
		if err != nil {
			return fmt.Errorf("column: %w", err)
		}
		cols[i] = quoted
		defs[i] = quoted + " double precision"
		params[i] = fmt.Sprintf("$%d", i+1)
		args[i] = table.Values[i]
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", ref)); err != nil {
		return fmt.Errorf("drop %s: %w", table.Name, err)
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf("CREATE TABLE %s (%s)", ref, strings.Join(defs, ", "))); err != nil {
		return fmt.Errorf("create %s: %w", table.Name, err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		ref, strings.Join(cols, ", "), strings.Join(params, ", "))
	if _, err := tx.Exec(ctx, insert, args...); err != nil {
		return fmt.Errorf("insert %s: %w", table.Name, err)
	}

	return tx.Commit(ctx)
}
