package entities

import (
	"math/rand"
)

// SessionState names the externally visible state of a quiz session.
type SessionState string

const (
	StateSelectingChapter SessionState = "selecting_chapter"
	StateAwaitingAnswer   SessionState = "awaiting_answer"
	StateAnswered         SessionState = "answered"
	StateFinished         SessionState = "finished"
)

// Session holds all mutable state for one user's pass through one chapter.
// All transitions are methods on the session; invalid transitions are
// no-ops, never panics, so a stray button press can do no harm.
type Session struct {
	Chapter  Chapter
	Order    []Question // shuffled once at creation, never reshuffled
	Position int        // index into Order; Position == len(Order) means done
	Selected Label      // currently chosen label, "" when unset
	Answered bool       // whether the current question has been locked in
	Score    int        // count of correct answers so far
}

// NewSession creates a session over a uniform random permutation of the
// given questions. The permutation is computed exactly once here; rng must
// be non-nil so tests can inject a fixed seed.
func NewSession(chapter Chapter, questions []Question, rng *rand.Rand) *Session {
	order := make([]Question, len(questions))
	copy(order, questions)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	return &Session{
		Chapter: chapter,
		Order:   order,
	}
}

// State derives the session state from its fields.
func (s *Session) State() SessionState {
	switch {
	case s.Order == nil:
		return StateSelectingChapter
	case s.Answered:
		return StateAnswered
	case s.Position >= len(s.Order):
		return StateFinished
	default:
		return StateAwaitingAnswer
	}
}

// Finished reports whether every question has been resolved and acknowledged.
func (s *Session) Finished() bool {
	return s.State() == StateFinished
}

// Current returns the question awaiting an answer, if any.
func (s *Session) Current() (Question, bool) {
	if s.State() != StateAwaitingAnswer {
		return Question{}, false
	}
	return s.Order[s.Position], true
}

// SelectOption records the chosen label for the current question. Selecting
// after the answer is locked in, or with no question pending, is a no-op.
func (s *Session) SelectOption(label Label) bool {
	if _, ok := s.Current(); !ok {
		return false
	}
	s.Selected = label
	return true
}

// Answer is a snapshot of one resolved question, taken at submit time so
// feedback always refers to the question that was just answered even though
// Position has already advanced.
type Answer struct {
	Number   int // 1-based sequence number within the session
	Total    int // total questions in the session
	Question Question
	Selected Label
	Correct  bool
}

// Submit locks in the selected answer: it scores the current question, marks
// it answered and advances Position, all in one step. A second Submit before
// Next, a Submit without a selection, or a Submit on a finished session is a
// no-op.
func (s *Session) Submit() (Answer, bool) {
	if s.Selected == "" {
		return Answer{}, false
	}
	q, ok := s.Current()
	if !ok {
		return Answer{}, false
	}

	ans := Answer{
		Number:   s.Position + 1,
		Total:    len(s.Order),
		Question: q,
		Selected: s.Selected,
		Correct:  s.Selected == q.CorrectLabel,
	}

	if ans.Correct {
		s.Score++
	}
	s.Answered = true
	s.Position++

	return ans, true
}

// Next acknowledges the feedback for the answered question and moves on.
// It clears the selection; whether the session continues or is finished is
// visible through State afterwards. Calling Next while not answered is a
// no-op.
func (s *Session) Next() bool {
	if !s.Answered {
		return false
	}
	s.Selected = ""
	s.Answered = false
	return true
}

// Reset clears the whole session and returns it to chapter selection. Valid
// from any state; this is the only way out of a finished session.
func (s *Session) Reset() {
	*s = Session{}
}

// ScorePercent returns the share of correct answers among the questions
// resolved so far. Before any question has been resolved the percentage is
// undefined and ok is false.
func (s *Session) ScorePercent() (float64, bool) {
	if s.Position == 0 {
		return 0, false
	}
	return float64(s.Score) / float64(s.Position) * 100, true
}
