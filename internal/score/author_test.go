package score

import (
	"testing"

	"github.com/ppiankov/bibfact/internal/model"
)

func TestAuthorTable_GroupedWideLayout(t *testing.T) {
	records := []model.AuthorRecord{
		{TaskName: "A", ResultValid: "valid", IsInAPS: boolPtr(true)},
		{TaskName: "A", ResultValid: "valid", IsInAPS: boolPtr(false)},
		{TaskName: "A", ResultValid: "valid", IsInAPS: boolPtr(true)},
		{TaskName: "B", ResultValid: "valid", IsInAPS: boolPtr(true)},
	}

	table := AuthorTable(DeriveAuthor(FilterValid(records)))

	if table.Name != "author_factuality" {
		t.Errorf("expected table author_factuality, got %s", table.Name)
	}
	if len(table.Columns) != 2 {
		t.Fatalf("expected one column per task name, got %v", table.Columns)
	}

	a, ok := table.Get("A")
	if !ok || a == nil {
		t.Fatal("expected a defined rate for A")
	}
	if !almostEqual(*a, 2.0/3.0) {
		t.Errorf("A: expected 0.667, got %f", *a)
	}

	b, ok := table.Get("B")
	if !ok || b == nil {
		t.Fatal("expected a defined rate for B")
	}
	if !almostEqual(*b, 1.0) {
		t.Errorf("B: expected 1.0, got %f", *b)
	}
}

func TestAuthorTable_MissingGroundTruthExcluded(t *testing.T) {
	records := []model.AuthorRecord{
		{TaskName: "A", ResultValid: "valid", IsInAPS: boolPtr(true)},
		{TaskName: "A", ResultValid: "valid", IsInAPS: nil},
	}

	table := AuthorTable(DeriveAuthor(FilterValid(records)))

	a, _ := table.Get("A")
	if a == nil {
		t.Fatal("expected a defined rate")
	}
	// The nil row leaves the denominator entirely; no substitution.
	if !almostEqual(*a, 1.0) {
		t.Errorf("expected 1.0, got %f", *a)
	}
}

func TestAuthorTable_ColumnsSorted(t *testing.T) {
	records := []model.AuthorRecord{
		{TaskName: "zeta", ResultValid: "valid", IsInAPS: boolPtr(true)},
		{TaskName: "alpha", ResultValid: "valid", IsInAPS: boolPtr(true)},
	}

	table := AuthorTable(DeriveAuthor(records))

	if table.Columns[0] != "alpha" || table.Columns[1] != "zeta" {
		t.Errorf("expected lexicographic column order, got %v", table.Columns)
	}
}
