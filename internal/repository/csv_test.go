package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/domain/entities"
)

const validChapterCSV = `question,optionA,optionB,optionC,correctAnswer,explanation
"What does ESG stand for?","Environmental, social and governance","Economic, strategic and governance","Environmental, statutory and growth",A,"ESG covers environmental, social and governance factors."
"Which pillar covers board independence?",Environmental,Social,Governance,C,"Board composition is a governance matter."
`

func writeChapter(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write chapter file: %v", err)
	}
}

func testRepo(t *testing.T) (*CSVChapterRepository, string) {
	t.Helper()
	dir := t.TempDir()
	chapters := []entities.Chapter{
		{ID: "chapter1", Title: "Introduction to ESG Investing", File: "chapter1.csv"},
		{ID: "chapter2", Title: "The ESG Market", File: "chapter2.csv"},
	}
	return NewCSVChapterRepository(dir, chapters), dir
}

func TestCSVLoad(t *testing.T) {
	repo, dir := testRepo(t)
	writeChapter(t, dir, "chapter1.csv", validChapterCSV)

	questions, err := repo.Load(context.Background(), "chapter1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	q := questions[0]
	if q.Text != "What does ESG stand for?" {
		t.Errorf("unexpected question text %q", q.Text)
	}
	if q.CorrectLabel != entities.LabelA {
		t.Errorf("expected correct label A, got %q", q.CorrectLabel)
	}
	if q.Options[2].Label != entities.LabelC {
		t.Errorf("expected third option labelled C, got %q", q.Options[2].Label)
	}
	if questions[1].CorrectLabel != entities.LabelC {
		t.Errorf("expected second question correct label C, got %q", questions[1].CorrectLabel)
	}
}

func TestCSVLoadUnknownChapter(t *testing.T) {
	repo, _ := testRepo(t)

	_, err := repo.Load(context.Background(), "chapter99")
	if !errors.Is(err, ErrChapterNotFound) {
		t.Fatalf("expected ErrChapterNotFound, got %v", err)
	}
}

func TestCSVLoadMissingFile(t *testing.T) {
	repo, _ := testRepo(t)

	// chapter2 is in the catalog but its file was never written.
	_, err := repo.Load(context.Background(), "chapter2")
	if !errors.Is(err, ErrChapterNotFound) {
		t.Fatalf("expected ErrChapterNotFound, got %v", err)
	}
}

func TestCSVLoadParseFailure(t *testing.T) {
	repo, dir := testRepo(t)
	writeChapter(t, dir, "chapter1.csv", "question,optionA\n\"unterminated,oops\n")

	_, err := repo.Load(context.Background(), "chapter1")
	if !errors.Is(err, ErrChapterParse) {
		t.Fatalf("expected ErrChapterParse, got %v", err)
	}
}

func TestCSVLoadSchemaFailures(t *testing.T) {
	cases := map[string]string{
		"missing column": "question,optionA,optionB,optionC,correctAnswer\nq,a,b,c,A\n",
		"bad correct label": `question,optionA,optionB,optionC,correctAnswer,explanation
q,a,b,c,D,e
`,
		"empty option": `question,optionA,optionB,optionC,correctAnswer,explanation
q,a,,c,A,e
`,
		"empty question": `question,optionA,optionB,optionC,correctAnswer,explanation
,a,b,c,A,e
`,
		"empty file": "",
	}

	for name, content := range cases {
		repo, dir := testRepo(t)
		writeChapter(t, dir, "chapter1.csv", content)

		_, err := repo.Load(context.Background(), "chapter1")
		if !errors.Is(err, ErrChapterSchema) {
			t.Errorf("%s: expected ErrChapterSchema, got %v", name, err)
		}
	}
}

func TestCSVLoadCaches(t *testing.T) {
	repo, dir := testRepo(t)
	writeChapter(t, dir, "chapter1.csv", validChapterCSV)

	first, err := repo.Load(context.Background(), "chapter1")
	if err != nil {
		t.Fatalf("first load: %v", err)
	}

	// Remove the file; the cached copy must keep serving.
	if err := os.Remove(filepath.Join(dir, "chapter1.csv")); err != nil {
		t.Fatalf("remove chapter file: %v", err)
	}

	second, err := repo.Load(context.Background(), "chapter1")
	if err != nil {
		t.Fatalf("cached load: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("cached load returned %d questions, want %d", len(second), len(first))
	}
	if &second[0] != &first[0] {
		t.Error("expected the cached slice to be reused")
	}
}

func TestCSVLoadFailureReturnsNothing(t *testing.T) {
	repo, dir := testRepo(t)
	writeChapter(t, dir, "chapter1.csv", `question,optionA,optionB,optionC,correctAnswer,explanation
good,a,b,c,A,e
bad,a,b,c,X,e
`)

	questions, err := repo.Load(context.Background(), "chapter1")
	if err == nil {
		t.Fatal("expected an error")
	}
	if questions != nil {
		t.Fatalf("expected no partial result, got %d questions", len(questions))
	}
}
