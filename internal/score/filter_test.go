package score

import (
	"testing"

	"github.com/ppiankov/bibfact/internal/model"
)

func TestFilterValid(t *testing.T) {
	records := []model.AuthorRecord{
		{TaskName: "existing", ResultValid: "valid"},
		{TaskName: "existing", ResultValid: "refused"},
		{TaskName: "invented", ResultValid: "valid"},
		{TaskName: "invented", ResultValid: "parse_error"},
		{TaskName: "existing", ResultValid: ""},
	}

	filtered := FilterValid(records)

	if len(filtered) != 2 {
		t.Fatalf("expected 2 valid records, got %d", len(filtered))
	}
	// Order must survive so derived flags stay attached to their rows.
	if filtered[0].TaskName != "existing" || filtered[1].TaskName != "invented" {
		t.Errorf("expected stable order, got %s then %s", filtered[0].TaskName, filtered[1].TaskName)
	}
}

func TestFilterValid_Idempotent(t *testing.T) {
	records := []model.FieldRecord{
		{ResultValid: "valid", TaskParam: "a"},
		{ResultValid: "other", TaskParam: "b"},
		{ResultValid: "valid", TaskParam: "c"},
	}

	once := FilterValid(records)
	twice := FilterValid(once)

	if len(once) != len(twice) {
		t.Fatalf("expected same length, got %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].TaskParam != twice[i].TaskParam {
			t.Errorf("row %d changed on refiltering: %s vs %s", i, once[i].TaskParam, twice[i].TaskParam)
		}
	}
}

func TestFilterValid_Empty(t *testing.T) {
	if got := FilterValid([]model.EpochRecord{}); len(got) != 0 {
		t.Errorf("expected empty result, got %d rows", len(got))
	}
}
