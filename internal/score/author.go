package score

import (
	"github.com/ppiankov/bibfact/internal/model"
)

// AuthorOutcome carries the derived flags for one author-existence row
type AuthorOutcome struct {
	TaskName string
	Match    *bool // is_in_aps, missing preserved
}

// DeriveAuthor computes per-row outcomes for the author task. Missing
// ground truth is carried through untouched; rows without it fall out of
// the denominator at aggregation.
func DeriveAuthor(records []model.AuthorRecord) []AuthorOutcome {
	outcomes := make([]AuthorOutcome, len(records))
	for i, r := range records {
		outcomes[i] = AuthorOutcome{
			TaskName: r.TaskName,
			Match:    r.IsInAPS,
		}
	}
	return outcomes
}

// AuthorTable aggregates author outcomes grouped by task name into one wide
// row, one column per task-name value.
func AuthorTable(outcomes []AuthorOutcome) *model.ResultTable {
	keys := make([]string, len(outcomes))
	flags := make([]*bool, len(outcomes))
	for i, o := range outcomes {
		keys[i] = o.TaskName
		flags[i] = o.Match
	}

	rates := GroupedRate(keys, flags, MissingExcluded)

	table := model.NewResultTable("author_factuality")
	for _, k := range sortedKeys(rates) {
		table.Add(k, rates[k])
	}
	return table
}
