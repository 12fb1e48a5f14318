package score

import (
	"github.com/ppiankov/bibfact/internal/model"
)

// FieldOutcome carries the derived flags for one publication-field row
type FieldOutcome struct {
	AuthorResolved bool  // a real author was resolved
	DOIResolved    bool  // a citable publication was resolved
	StrictPass     *bool // author+DOI+field all correct; missing scored as fail
}

// DeriveField computes per-row outcomes for the field task. The strict flag
// keeps its raw tri-state here; the missing-as-fail policy is applied at
// aggregation so the substitution stays visible in one place.
func DeriveField(records []model.FieldRecord) []FieldOutcome {
	outcomes := make([]FieldOutcome, len(records))
	for i, r := range records {
		outcomes[i] = FieldOutcome{
			AuthorResolved: r.AuthorID != nil,
			DOIResolved:    r.PublicationID != nil,
			StrictPass:     r.DOIAuthorField,
		}
	}
	return outcomes
}

// FieldTable aggregates field outcomes into one row. adf_ok counts a
// missing strict flag as a fail, not an exclusion: an unresolved author or
// DOI means the joint claim was wrong.
func FieldTable(outcomes []FieldOutcome) *model.ResultTable {
	authorOK := make([]*bool, len(outcomes))
	doiOK := make([]*bool, len(outcomes))
	adfOK := make([]*bool, len(outcomes))
	for i, o := range outcomes {
		authorOK[i] = known(o.AuthorResolved)
		doiOK[i] = known(o.DOIResolved)
		adfOK[i] = o.StrictPass
	}

	table := model.NewResultTable("field_factuality")
	table.Add("author_ok", Rate(authorOK, MissingExcluded))
	table.Add("doi_ok", Rate(doiOK, MissingExcluded))
	table.Add("adf_ok", Rate(adfOK, MissingAsFail))
	return table
}
