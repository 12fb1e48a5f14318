package score

import (
	"github.com/ppiankov/bibfact/internal/model"
)

// SeniorityOutcome carries the derived flags for one seniority row
type SeniorityOutcome struct {
	AuthorResolved bool
	MatchThen      *bool // ground-truth match in the active frame, missing preserved
	MatchNow       *bool // ground-truth match in the current frame, missing preserved
	MatchedEither  bool  // at least one frame present and true
	ThenText       *bool // answer-text self-consistency, active frame
	NowText        *bool // answer-text self-consistency, current frame
}

// DeriveSeniority computes per-row outcomes for the seniority task. The
// per-frame flags keep missing as missing; only the combined MatchedEither
// substitutes false for missing before the OR, so a row matches overall
// only when some frame is both present and true.
func DeriveSeniority(records []model.SeniorityRecord) []SeniorityOutcome {
	outcomes := make([]SeniorityOutcome, len(records))
	for i, r := range records {
		outcomes[i] = SeniorityOutcome{
			AuthorResolved: r.AuthorID != nil,
			MatchThen:      r.ActiveRequested,
			MatchNow:       r.NowRequested,
			MatchedEither:  orFalseOnMissing(r.ActiveRequested, r.NowRequested),
			ThenText:       r.ActiveText,
			NowText:        r.NowText,
		}
	}
	return outcomes
}

func orFalseOnMissing(a, b *bool) bool {
	return (a != nil && *a) || (b != nil && *b)
}

// SeniorityTable aggregates seniority outcomes into one row
func SeniorityTable(outcomes []SeniorityOutcome) *model.ResultTable {
	authorExists := make([]*bool, len(outcomes))
	matchThen := make([]*bool, len(outcomes))
	matchNow := make([]*bool, len(outcomes))
	thenText := make([]*bool, len(outcomes))
	nowText := make([]*bool, len(outcomes))
	for i, o := range outcomes {
		authorExists[i] = known(o.AuthorResolved)
		matchThen[i] = o.MatchThen
		matchNow[i] = o.MatchNow
		thenText[i] = o.ThenText
		nowText[i] = o.NowText
	}

	table := model.NewResultTable("seniority_factuality")
	table.Add("author_exists", Rate(authorExists, MissingExcluded))
	table.Add("match_then", Rate(matchThen, MissingExcluded))
	table.Add("match_now", Rate(matchNow, MissingExcluded))
	table.Add("then_txt_alignment", Rate(thenText, MissingExcluded))
	table.Add("now_txt_alignment", Rate(nowText, MissingExcluded))
	return table
}
