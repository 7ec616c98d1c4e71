package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/domain/entities"
)

// CSVChapterRepository reads chapter questions from per-chapter CSV files.
// Loaded chapters are cached for the process lifetime; cached slices are
// immutable after population and may be shared between sessions.
type CSVChapterRepository struct {
	dir      string
	chapters []entities.Chapter

	mu    sync.RWMutex
	cache map[string][]entities.Question
}

// NewCSVChapterRepository creates a repository over the chapter catalog with
// files resolved relative to dir.
func NewCSVChapterRepository(dir string, chapters []entities.Chapter) *CSVChapterRepository {
	return &CSVChapterRepository{
		dir:      dir,
		chapters: chapters,
		cache:    make(map[string][]entities.Question),
	}
}

// Chapters returns the chapter catalog in configured order.
func (r *CSVChapterRepository) Chapters() []entities.Chapter {
	return r.chapters
}

// Load returns the questions of a chapter in file order. It fails with
// ErrChapterNotFound, ErrChapterParse or ErrChapterSchema and never returns
// a partial result.
func (r *CSVChapterRepository) Load(_ context.Context, chapterID string) ([]entities.Question, error) {
	r.mu.RLock()
	questions, ok := r.cache[chapterID]
	r.mu.RUnlock()
	if ok {
		return questions, nil
	}

	chapter, ok := chapterByID(r.chapters, chapterID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrChapterNotFound, chapterID)
	}

	questions, err := r.readFile(filepath.Join(r.dir, chapter.File))
	if err != nil {
		return nil, fmt.Errorf("chapter %q: %w", chapterID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Keep the first loaded copy if another caller raced us here.
	if cached, ok := r.cache[chapterID]; ok {
		return cached, nil
	}
	r.cache[chapterID] = questions

	return questions, nil
}

func (r *CSVChapterRepository) readFile(path string) ([]entities.Question, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %v", ErrChapterNotFound, err)
		}
		return nil, fmt.Errorf("open chapter file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChapterParse, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrChapterSchema)
	}

	columns, err := columnIndex(records[0])
	if err != nil {
		return nil, err
	}

	questions := make([]entities.Question, 0, len(records)-1)
	for i, record := range records[1:] {
		q, err := newQuestion(
			record[columns[colQuestion]],
			record[columns[colOptionA]],
			record[columns[colOptionB]],
			record[columns[colOptionC]],
			record[columns[colCorrectAnswer]],
			record[columns[colExplanation]],
		)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		questions = append(questions, q)
	}

	return questions, nil
}

// columnIndex maps the required column names to their positions in the
// header row.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	for _, name := range chapterColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrChapterSchema, name)
		}
	}

	return index, nil
}
