package model

// ResultValid is the only value of the result-valid flag that admits a
// record into scoring. Anything else (parse failures, refusals, harness
// errors) must never reach an aggregate.
const ResultValid = "valid"

// Task identifies one of the four question types
type Task string

const (
	TaskAuthor    Task = "author"    // author-existence questions
	TaskField     Task = "field"     // field correctness of a cited publication
	TaskEpoch     Task = "epoch"     // agreement with a requested decade
	TaskSeniority Task = "seniority" // agreement with a seniority level
)

// AuthorRecord is one answer to an author-existence question.
// Missing values are nil pointers throughout; the store maps SQL NULL to nil.
type AuthorRecord struct {
	TaskName    string  // variant label used to group rows in the report
	TaskParam   string  // free text describing the request
	ResultValid string  // only "valid" rows are scored
	AuthorID    *string // OpenAlex author id; non-nil iff a real author was resolved
	IsInAPS     *bool   // whether the named author exists in the APS corpus
}

// Valid reports whether the record may contribute to any aggregate
func (r AuthorRecord) Valid() bool { return r.ResultValid == ResultValid }

// FieldRecord is one answer to a publication-field question
type FieldRecord struct {
	TaskParam      string
	ResultValid    string
	AuthorID       *string // id_author_oa
	PublicationID  *string // APS publication id; non-nil iff a citable publication was resolved
	DOIAuthorField *bool   // strict author+DOI+field correctness, nil when unresolved
}

func (r FieldRecord) Valid() bool { return r.ResultValid == ResultValid }

// EpochRecord is one answer to a decade-agreement question. TaskParam names
// the requested decade; Years is the model's free-text description of the
// author's active period.
type EpochRecord struct {
	TaskParam      string
	ResultValid    string
	AuthorID       *string
	EpochRequested *bool   // fact flag: did the author publish in the requested decade
	Years          *string // free text, scanned for four-digit year mentions
}

func (r EpochRecord) Valid() bool { return r.ResultValid == ResultValid }

// SeniorityRecord is one answer to a seniority-level question, judged
// against two temporal frames: the author's active period ("then") and the
// present ("now").
type SeniorityRecord struct {
	TaskParam       string
	ResultValid     string
	AuthorID        *string
	ActiveRequested *bool // ground truth matched the requested level in the active frame
	NowRequested    *bool // ground truth matched the requested level in the current frame
	ActiveText      *bool // model's answer text self-consistent for the active frame
	NowText         *bool // model's answer text self-consistent for the current frame
}

func (r SeniorityRecord) Valid() bool { return r.ResultValid == ResultValid }
