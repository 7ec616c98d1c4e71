package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/domain/entities"
)

// PostgresChapterRepository reads chapter questions from a chapter_questions
// table carrying the same columns as the CSV files. It is read-only; quiz
// session state is never written anywhere. Loaded chapters are cached like
// in the CSV repository.
type PostgresChapterRepository struct {
	db       *pgxpool.Pool
	chapters []entities.Chapter

	mu    sync.RWMutex
	cache map[string][]entities.Question
}

// NewPostgresChapterRepository creates a repository over the chapter catalog
// backed by the provided database pool.
func NewPostgresChapterRepository(db *pgxpool.Pool, chapters []entities.Chapter) *PostgresChapterRepository {
	return &PostgresChapterRepository{
		db:       db,
		chapters: chapters,
		cache:    make(map[string][]entities.Question),
	}
}

// Chapters returns the chapter catalog in configured order.
func (r *PostgresChapterRepository) Chapters() []entities.Chapter {
	return r.chapters
}

// Load returns the questions of a chapter in table order, subject to the
// same error taxonomy as the CSV source.
func (r *PostgresChapterRepository) Load(ctx context.Context, chapterID string) ([]entities.Question, error) {
	r.mu.RLock()
	questions, ok := r.cache[chapterID]
	r.mu.RUnlock()
	if ok {
		return questions, nil
	}

	if _, ok := chapterByID(r.chapters, chapterID); !ok {
		return nil, fmt.Errorf("%w: %q", ErrChapterNotFound, chapterID)
	}

	questions, err := r.queryQuestions(ctx, chapterID)
	if err != nil {
		return nil, fmt.Errorf("chapter %q: %w", chapterID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.cache[chapterID]; ok {
		return cached, nil
	}
	r.cache[chapterID] = questions

	return questions, nil
}

func (r *PostgresChapterRepository) queryQuestions(ctx context.Context, chapterID string) ([]entities.Question, error) {
	query := `
		SELECT question, option_a, option_b, option_c, correct_answer, explanation
		FROM chapter_questions
		WHERE chapter_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, chapterID)
	if err != nil {
		return nil, fmt.Errorf("query chapter questions: %w", err)
	}
	defer rows.Close()

	var questions []entities.Question
	for rows.Next() {
		var text, optionA, optionB, optionC, correctAnswer, explanation string
		err := rows.Scan(&text, &optionA, &optionB, &optionC, &correctAnswer, &explanation)
		if err != nil {
			return nil, fmt.Errorf("scan chapter question: %w", err)
		}

		q, err := newQuestion(text, optionA, optionB, optionC, correctAnswer, explanation)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read chapter questions: %w", err)
	}

	if questions == nil {
		questions = []entities.Question{}
	}

	return questions, nil
}
