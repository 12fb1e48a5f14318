package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/ppiankov/bibfact/internal/model"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

// fakeSource serves canned records
type fakeSource struct {
	authors  []model.AuthorRecord
	fields   []model.FieldRecord
	epochs   []model.EpochRecord
	seniors  []model.SeniorityRecord
	epochErr error
}

func (s *fakeSource) LoadAuthorRecords(ctx context.Context) ([]model.AuthorRecord, error) {
	return s.authors, nil
}

func (s *fakeSource) LoadFieldRecords(ctx context.Context) ([]model.FieldRecord, error) {
	return s.fields, nil
}

func (s *fakeSource) LoadEpochRecords(ctx context.Context) ([]model.EpochRecord, error) {
	if s.epochErr != nil {
		return nil, s.epochErr
	}
	return s.epochs, nil
}

func (s *fakeSource) LoadSeniorityRecords(ctx context.Context) ([]model.SeniorityRecord, error) {
	return s.seniors, nil
}

// fakeSink records written tables
type fakeSink struct {
	written []*model.ResultTable
}

func (s *fakeSink) WriteResultTable(ctx context.Context, table *model.ResultTable) error {
	s.written = append(s.written, table)
	return nil
}

func testSource() *fakeSource {
	return &fakeSource{
		authors: []model.AuthorRecord{
			{TaskName: "existing", ResultValid: "valid", IsInAPS: boolPtr(true)},
			{TaskName: "existing", ResultValid: "refused", IsInAPS: boolPtr(false)},
			{TaskName: "invented", ResultValid: "valid", IsInAPS: boolPtr(false)},
		},
		fields: []model.FieldRecord{
			{ResultValid: "valid", AuthorID: strPtr("A1"), PublicationID: strPtr("P1"), DOIAuthorField: boolPtr(true)},
		},
		epochs: []model.EpochRecord{
			{ResultValid: "valid", TaskParam: "the 1950s", Years: strPtr("1952 to 1957"), AuthorID: strPtr("A1"), EpochRequested: boolPtr(true)},
		},
		seniors: []model.SeniorityRecord{
			{ResultValid: "valid", AuthorID: strPtr("A1"), ActiveRequested: boolPtr(true), NowRequested: boolPtr(false)},
		},
	}
}

func TestPipeline_Run(t *testing.T) {
	sink := &fakeSink{}
	p := NewPipeline(testSource(), sink)

	result, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Tables) != 4 {
		t.Fatalf("expected 4 result tables, got %d", len(result.Tables))
	}
	if len(sink.written) != 4 {
		t.Fatalf("expected 4 tables written, got %d", len(sink.written))
	}

	wantNames := []string{"author_factuality", "field_factuality", "epoch_factuality", "seniority_factuality"}
	for i, want := range wantNames {
		if result.Tables[i].Name != want {
			t.Errorf("table %d: expected %s, got %s", i, want, result.Tables[i].Name)
		}
	}

	// Invalid author row is counted as loaded but not scored.
	if result.Counts[0].Loaded != 3 || result.Counts[0].Valid != 2 {
		t.Errorf("author counts: expected 3 loaded / 2 valid, got %d/%d",
			result.Counts[0].Loaded, result.Counts[0].Valid)
	}

	authorTable := result.Tables[0]
	existing, ok := authorTable.Get("existing")
	if !ok || existing == nil || *existing != 1.0 {
		t.Errorf("existing: expected 1.0, got %v", existing)
	}
	invented, ok := authorTable.Get("invented")
	if !ok || invented == nil || *invented != 0.0 {
		t.Errorf("invented: expected 0.0, got %v", invented)
	}

	epochTable := result.Tables[2]
	inTxt, _ := epochTable.Get("In_txt")
	if inTxt == nil || *inTxt != 1.0 {
		t.Errorf("In_txt: expected 1.0, got %v", inTxt)
	}
}

func TestPipeline_LoadErrorAbortsBeforeAnyWrite(t *testing.T) {
	source := testSource()
	source.epochErr = errors.New(`relation "factuality_epoch" does not exist`)
	sink := &fakeSink{}
	p := NewPipeline(source, sink)

	_, err := p.Run(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(sink.written) != 0 {
		t.Errorf("expected no partial output, got %d tables written", len(sink.written))
	}
}

func TestPipeline_NilSinkComputesOnly(t *testing.T) {
	p := NewPipeline(testSource(), nil)

	result, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Tables) != 4 {
		t.Errorf("expected 4 tables, got %d", len(result.Tables))
	}
}
