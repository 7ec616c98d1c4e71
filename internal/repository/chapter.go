// Package repository provides the chapter question sources. Both the CSV and
// the Postgres source read the same tabular schema and report failures
// through the same sentinel errors, so callers treat a chapter as available
// or unavailable without caring where it lives.
package repository

import (
	"errors"
	"fmt"

	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/domain/entities"
)

var (
	// ErrChapterNotFound means the chapter identifier maps to no known source.
	ErrChapterNotFound = errors.New("chapter not found")
	// ErrChapterParse means the source exists but is not valid tabular data.
	ErrChapterParse = errors.New("chapter data cannot be parsed")
	// ErrChapterSchema means a record is missing a field or breaks the
	// question invariant.
	ErrChapterSchema = errors.New("chapter record is invalid")
)

// Column names of the chapter question schema, shared by both sources.
const (
	colQuestion      = "question"
	colOptionA       = "optionA"
	colOptionB       = "optionB"
	colOptionC       = "optionC"
	colCorrectAnswer = "correctAnswer"
	colExplanation   = "explanation"
)

var chapterColumns = []string{colQuestion, colOptionA, colOptionB, colOptionC, colCorrectAnswer, colExplanation}

// newQuestion builds and validates a question from one source record.
func newQuestion(text, optionA, optionB, optionC, correctAnswer, explanation string) (entities.Question, error) {
	label, err := entities.ParseLabel(correctAnswer)
	if err != nil {
		return entities.Question{}, fmt.Errorf("%w: %v", ErrChapterSchema, err)
	}

	q := entities.Question{
		Text: text,
		Options: [3]entities.Option{
			{Label: entities.LabelA, Text: optionA},
			{Label: entities.LabelB, Text: optionB},
			{Label: entities.LabelC, Text: optionC},
		},
		CorrectLabel: label,
		Explanation:  explanation,
	}

	if err := q.Validate(); err != nil {
		return entities.Question{}, fmt.Errorf("%w: %v", ErrChapterSchema, err)
	}

	return q, nil
}

// chapterByID scans a catalog for the given identifier.
func chapterByID(chapters []entities.Chapter, id string) (entities.Chapter, bool) {
	for _, c := range chapters {
		if c.ID == id {
			return c, true
		}
	}
	return entities.Chapter{}, false
}
