package score

import (
	"math"
	"testing"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRate_ExcludesMissing(t *testing.T) {
	flags := []*bool{boolPtr(true), boolPtr(false), nil, boolPtr(true), nil}

	rate := Rate(flags, MissingExcluded)
	if rate == nil {
		t.Fatal("expected a defined rate")
	}
	// Missing rows contribute to neither numerator nor denominator: 2/3.
	if !almostEqual(*rate, 2.0/3.0) {
		t.Errorf("expected 2/3, got %f", *rate)
	}
}

func TestRate_MissingAsFail(t *testing.T) {
	flags := []*bool{boolPtr(true), nil, nil, boolPtr(true)}

	rate := Rate(flags, MissingAsFail)
	if rate == nil {
		t.Fatal("expected a defined rate")
	}
	// Missing stays in the denominator as a fail: 2/4.
	if !almostEqual(*rate, 0.5) {
		t.Errorf("expected 0.5, got %f", *rate)
	}
}

func TestRate_UndefinedWhenNoObservations(t *testing.T) {
	if rate := Rate(nil, MissingExcluded); rate != nil {
		t.Errorf("expected undefined rate for empty input, got %f", *rate)
	}

	// All-missing under the exclude policy leaves an empty denominator.
	allMissing := []*bool{nil, nil, nil}
	if rate := Rate(allMissing, MissingExcluded); rate != nil {
		t.Errorf("expected undefined rate for all-missing input, got %f", *rate)
	}

	// Under missing-as-fail the same input is a defined 0.0, which must
	// stay distinguishable from undefined.
	rate := Rate(allMissing, MissingAsFail)
	if rate == nil {
		t.Fatal("expected defined rate under missing-as-fail")
	}
	if *rate != 0.0 {
		t.Errorf("expected 0.0, got %f", *rate)
	}
}

func TestGroupedRate(t *testing.T) {
	keys := []string{"A", "A", "B", "A", "B"}
	flags := []*bool{boolPtr(true), boolPtr(false), boolPtr(true), nil, nil}

	rates := GroupedRate(keys, flags, MissingExcluded)

	if len(rates) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(rates))
	}
	if rates["A"] == nil || !almostEqual(*rates["A"], 0.5) {
		t.Errorf("group A: expected 0.5, got %v", rates["A"])
	}
	if rates["B"] == nil || !almostEqual(*rates["B"], 1.0) {
		t.Errorf("group B: expected 1.0, got %v", rates["B"])
	}
}

func TestGroupedRate_AllMissingGroup(t *testing.T) {
	keys := []string{"A", "B"}
	flags := []*bool{boolPtr(true), nil}

	rates := GroupedRate(keys, flags, MissingExcluded)

	rate, ok := rates["B"]
	if !ok {
		t.Fatal("expected group B to be present even with no observations")
	}
	if rate != nil {
		t.Errorf("expected undefined rate for group B, got %f", *rate)
	}
}
