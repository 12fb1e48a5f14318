package score

import (
	"github.com/ppiankov/bibfact/internal/extract"
	"github.com/ppiankov/bibfact/internal/interval"
	"github.com/ppiankov/bibfact/internal/model"
)

// EpochOutcome carries the derived flags for one decade-agreement row
type EpochOutcome struct {
	AuthorResolved bool
	Fact           *bool // fact_epoch_requested, missing preserved
	Requested      model.Window
	Observed       model.Window
	Relation       model.Relation

	// One-hot relation flags, nil when the relation is Undefined so those
	// rows drop out of every denominator
	In   *bool
	Out  *bool
	Over *bool
}

// EpochDeriver computes per-row outcomes for the epoch task
type EpochDeriver struct {
	years *extract.YearExtractor
}

// NewEpochDeriver creates a new epoch deriver
func NewEpochDeriver() *EpochDeriver {
	return &EpochDeriver{years: extract.NewYearExtractor()}
}

// Derive recovers the requested decade from the task parameter (first
// four-digit mention, extended by nine years) and the observed window from
// the model's free-text years, then classifies their relationship.
func (d *EpochDeriver) Derive(records []model.EpochRecord) []EpochOutcome {
	outcomes := make([]EpochOutcome, len(records))
	for i, r := range records {
		var requested model.Window
		if start := d.years.First(r.TaskParam); start != nil {
			requested = model.NewWindow(*start, *start+9)
		}

		observed := d.years.Range(r.Years)
		relation := interval.Classify(observed, requested)

		o := EpochOutcome{
			AuthorResolved: r.AuthorID != nil,
			Fact:           r.EpochRequested,
			Requested:      requested,
			Observed:       observed,
			Relation:       relation,
		}
		if relation != model.RelationUndefined {
			o.In = known(relation == model.RelationIn)
			o.Out = known(relation == model.RelationOut)
			o.Over = known(relation == model.RelationOver)
		}
		outcomes[i] = o
	}
	return outcomes
}

// EpochTable aggregates epoch outcomes into one row. The three *_txt rates
// share a denominator of classified rows, so they sum to one whenever any
// row classified.
func EpochTable(outcomes []EpochOutcome) *model.ResultTable {
	authorExists := make([]*bool, len(outcomes))
	match := make([]*bool, len(outcomes))
	in := make([]*bool, len(outcomes))
	out := make([]*bool, len(outcomes))
	over := make([]*bool, len(outcomes))
	for i, o := range outcomes {
		authorExists[i] = known(o.AuthorResolved)
		match[i] = o.Fact
		in[i] = o.In
		out[i] = o.Out
		over[i] = o.Over
	}

	table := model.NewResultTable("epoch_factuality")
	table.Add("author_exists", Rate(authorExists, MissingExcluded))
	table.Add("match", Rate(match, MissingExcluded))
	table.Add("In_txt", Rate(in, MissingExcluded))
	table.Add("Out_txt", Rate(out, MissingExcluded))
	table.Add("Over_txt", Rate(over, MissingExcluded))
	return table
}
