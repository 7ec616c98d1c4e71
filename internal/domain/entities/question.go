// Package entities contains domain entities used across the application.
package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Label identifies one of the three answer options of a question.
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
	LabelC Label = "C"
)

// Labels lists all valid option labels in display order.
var Labels = [3]Label{LabelA, LabelB, LabelC}

var ErrInvalidLabel = errors.New("invalid option label")

// ParseLabel converts a raw string into a Label. Case and surrounding
// whitespace are ignored; anything other than A, B or C is rejected.
func ParseLabel(s string) (Label, error) {
	switch Label(strings.ToUpper(strings.TrimSpace(s))) {
	case LabelA:
		return LabelA, nil
	case LabelB:
		return LabelB, nil
	case LabelC:
		return LabelC, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}
}

// Option is a single labelled answer choice.
type Option struct {
	Label Label
	Text  string
}

// Question is one multiple-choice question of a chapter. Questions are
// immutable after loading; sessions only ever read them.
type Question struct {
	Text         string    // the prompt
	Options      [3]Option // exactly A, B, C in order
	CorrectLabel Label     // label of the correct option
	Explanation  string    // shown after the question is answered
}

// Option returns the option carrying the given label.
func (q Question) Option(label Label) (Option, bool) {
	for _, opt := range q.Options {
		if opt.Label == label {
			return opt, true
		}
	}
	return Option{}, false
}

// CorrectOption returns the option matching CorrectLabel.
func (q Question) CorrectOption() Option {
	opt, _ := q.Option(q.CorrectLabel)
	return opt
}

// Validate checks the question invariant: a non-empty prompt, three options
// labelled A, B and C with non-empty text, and a correct label that is one
// of them.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return errors.New("question text is empty")
	}
	for i, opt := range q.Options {
		if opt.Label != Labels[i] {
			return fmt.Errorf("option %d has label %q, want %q", i, opt.Label, Labels[i])
		}
		if strings.TrimSpace(opt.Text) == "" {
			return fmt.Errorf("option %s has empty text", opt.Label)
		}
	}
	if _, ok := q.Option(q.CorrectLabel); !ok {
		return fmt.Errorf("correct label %q is not one of the options", q.CorrectLabel)
	}
	return nil
}

// Chapter describes one independently loadable set of questions.
type Chapter struct {
	ID    string `mapstructure:"id"`    // opaque chapter identifier
	Title string `mapstructure:"title"` // human-readable chapter title
	File  string `mapstructure:"file"`  // CSV file name for file-backed sources
}
