// Package service implements the quiz use cases on top of a chapter source
// and the per-chat session storage.
package service

import (
	"context"
	"math/rand"

	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/domain/entities"
)

// ChapterRepository is the question bank: it knows the chapter catalog and
// loads a chapter's questions in source order.
type ChapterRepository interface {
	Chapters() []entities.Chapter
	Load(ctx context.Context, chapterID string) ([]entities.Question, error)
}

// SessionStorage keeps the active session of each chat.
type SessionStorage interface {
	Store(chatID int64, session *entities.Session)
	Get(chatID int64) *entities.Session
	Delete(chatID int64)
}

// QuizService drives quiz sessions: chapter selection with a one-time
// shuffle, the answer/submit/next lifecycle and reset back to the menu.
type QuizService struct {
	chapterRepo ChapterRepository
	sessions    SessionStorage

	rng *rand.Rand
}

// NewQuizService creates a QuizService. The rng seeds every session shuffle;
// tests pass a fixed seed to get deterministic permutations.
func NewQuizService(chapterRepo ChapterRepository, sessions SessionStorage, rng *rand.Rand) *QuizService {
	return &QuizService{
		chapterRepo: chapterRepo,
		sessions:    sessions,
		rng:         rng,
	}
}

// Chapters returns the chapter catalog for the menu.
func (s *QuizService) Chapters() []entities.Chapter {
	return s.chapterRepo.Chapters()
}

// Session returns the chat's active session, or nil while the chat is
// choosing a chapter.
func (s *QuizService) Session(chatID int64) *entities.Session {
	return s.sessions.Get(chatID)
}

// SelectChapter loads a chapter and starts a fresh session over a shuffled
// copy of its questions. On a load failure no session is created or
// replaced, so the chat stays at chapter selection.
func (s *QuizService) SelectChapter(ctx context.Context, chatID int64, chapterID string) (*entities.Session, error) {
	questions, err := s.chapterRepo.Load(ctx, chapterID)
	if err != nil {
		return nil, err
	}

	// Load succeeding implies the chapter is in the catalog.
	chapter, _ := chapterByID(s.chapterRepo.Chapters(), chapterID)

	session := entities.NewSession(chapter, questions, s.rng)
	s.sessions.Store(chatID, session)

	return session, nil
}

// SelectOption records the chosen label for the chat's current question.
func (s *QuizService) SelectOption(chatID int64, label entities.Label) (*entities.Session, bool) {
	session := s.sessions.Get(chatID)
	if session == nil {
		return nil, false
	}
	return session, session.SelectOption(label)
}

// Submit locks in the chat's selected answer and returns the feedback
// snapshot for the question that was just answered.
func (s *QuizService) Submit(chatID int64) (*entities.Session, entities.Answer, bool) {
	session := s.sessions.Get(chatID)
	if session == nil {
		return nil, entities.Answer{}, false
	}
	answer, ok := session.Submit()
	return session, answer, ok
}

// Next moves the chat's session past the feedback screen.
func (s *QuizService) Next(chatID int64) (*entities.Session, bool) {
	session := s.sessions.Get(chatID)
	if session == nil {
		return nil, false
	}
	return session, session.Next()
}

// Reset drops the chat's session entirely, returning the chat to chapter
// selection with no leftover score or position.
func (s *QuizService) Reset(chatID int64) {
	if session := s.sessions.Get(chatID); session != nil {
		session.Reset()
	}
	s.sessions.Delete(chatID)
}

func chapterByID(chapters []entities.Chapter, id string) (entities.Chapter, bool) {
	for _, c := range chapters {
		if c.ID == id {
			return c, true
		}
	}
	return entities.Chapter{}, false
}
