package telegram

import (
	"strings"
	"testing"

	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/domain/entities"
)

func feedbackQuestion() entities.Question {
	return entities.Question{
		Text: "Which pillar does board diversity belong to?",
		Options: [3]entities.Option{
			{Label: entities.LabelA, Text: "Environmental"},
			{Label: entities.LabelB, Text: "Social"},
			{Label: entities.LabelC, Text: "Governance"},
		},
		CorrectLabel: entities.LabelC,
		Explanation:  "Board composition is a governance matter.",
	}
}

func feedbackSession() *entities.Session {
	return &entities.Session{
		Chapter:  entities.Chapter{ID: "chapter1", Title: "Introduction to ESG"},
		Order:    []entities.Question{feedbackQuestion(), feedbackQuestion()},
		Position: 1,
		Score:    1,
	}
}

func TestFormatQuestionScreen(t *testing.T) {
	session := feedbackSession()
	session.Position = 0
	session.Score = 0

	got := formatQuestionScreen(session)
	for _, want := range []string{
		"Introduction to ESG",
		"Question 1 of 2",
		"Which pillar does board diversity belong to?",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("question screen missing %q:\n%s", want, got)
		}
	}
}

func TestFormatQuestionScreenEscapesHTML(t *testing.T) {
	session := feedbackSession()
	session.Position = 0
	session.Order[0].Text = "Is <b>greenwashing</b> a risk?"

	got := formatQuestionScreen(session)
	if strings.Contains(got, "<b>greenwashing</b>") {
		t.Errorf("question text was not escaped:\n%s", got)
	}
	if !strings.Contains(got, "&lt;b&gt;greenwashing&lt;/b&gt;") {
		t.Errorf("escaped question text missing:\n%s", got)
	}
}

func TestFormatFeedbackCorrect(t *testing.T) {
	session := feedbackSession()
	answer := entities.Answer{
		Number:   1,
		Total:    2,
		Question: feedbackQuestion(),
		Selected: entities.LabelC,
		Correct:  true,
	}

	got := formatFeedback(session, answer)
	if !strings.Contains(got, "Correct!") {
		t.Errorf("feedback missing verdict:\n%s", got)
	}
	if strings.Contains(got, "Incorrect") {
		t.Errorf("correct answer rendered as incorrect:\n%s", got)
	}
	if !strings.Contains(got, "Question 1 of 2") {
		t.Errorf("feedback missing question number:\n%s", got)
	}
	if !strings.Contains(got, "Board composition is a governance matter.") {
		t.Errorf("feedback missing explanation:\n%s", got)
	}
}

func TestFormatFeedbackIncorrectNamesCorrectOption(t *testing.T) {
	session := feedbackSession()
	session.Score = 0
	answer := entities.Answer{
		Number:   1,
		Total:    2,
		Question: feedbackQuestion(),
		Selected: entities.LabelA,
		Correct:  false,
	}

	got := formatFeedback(session, answer)
	if !strings.Contains(got, "Incorrect!") {
		t.Errorf("feedback missing verdict:\n%s", got)
	}
	if !strings.Contains(got, "C) Governance") {
		t.Errorf("feedback missing correct option:\n%s", got)
	}
}

func TestFormatFeedbackOmitsEmptyExplanation(t *testing.T) {
	session := feedbackSession()
	answer := entities.Answer{
		Number:   1,
		Total:    2,
		Question: feedbackQuestion(),
		Selected: entities.LabelC,
		Correct:  true,
	}
	answer.Question.Explanation = ""

	if got := formatFeedback(session, answer); strings.Contains(got, "💡") {
		t.Errorf("feedback rendered an empty explanation:\n%s", got)
	}
}

func TestFormatScoreBar(t *testing.T) {
	session := feedbackSession()
	session.Position = 2
	session.Score = 1

	got := formatScoreBar(session)
	if !strings.Contains(got, "Correct: 1 / 2 (50.0%)") {
		t.Errorf("score line wrong:\n%s", got)
	}
	if !strings.Contains(got, strings.Repeat("█", 5)+strings.Repeat("░", 5)) {
		t.Errorf("bar wrong:\n%s", got)
	}
}

func TestFormatScoreBarBeforeFirstAnswer(t *testing.T) {
	session := feedbackSession()
	session.Position = 0
	session.Score = 0

	if got := formatScoreBar(session); got != "" {
		t.Errorf("expected no bar before the first answer, got:\n%s", got)
	}
}

func TestFormatSummary(t *testing.T) {
	session := feedbackSession()
	session.Position = 2
	session.Score = 2

	got := formatSummary(session)
	if !strings.Contains(got, "Quiz finished!") {
		t.Errorf("summary missing headline:\n%s", got)
	}
	if !strings.Contains(got, "Introduction to ESG") {
		t.Errorf("summary missing chapter title:\n%s", got)
	}
	if !strings.Contains(got, "Correct: 2 / 2 (100.0%)") {
		t.Errorf("summary missing score:\n%s", got)
	}
}
