package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/domain/entities"
	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/repository"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)

	var (
		text string
		kb   tgbotapi.InlineKeyboardMarkup
		ok   bool
	)

	switch data.Action {
	case actionChapter:
		text, kb, ok = h.handleChapterCallback(ctx, chatID, data)

	case actionAnswer:
		text, kb, ok = h.handleAnswerCallback(chatID, data)

	case actionSubmit:
		text, kb, ok = h.handleSubmitCallback(chatID)

	case actionNext:
		text, kb, ok = h.handleNextCallback(chatID)

	case actionRetry:
		// Retry is a full reset followed by selecting the same chapter.
		h.quizService.Reset(chatID)
		text, kb, ok = h.handleChapterCallback(ctx, chatID, data)

	case actionMenu:
		text, kb, ok = h.handleMenuCallback(chatID)

	default:
		h.logger.Debug("unknown callback", zap.String("data", cb.Data))
	}

	if ok {
		edit := newHTMLEdit(chatID, cb.Message.MessageID, text)
		edit.ReplyMarkup = &kb
		h.send(edit)
	}

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, "")
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Error("callback answer error", zap.Error(err))
	}
}

// handleChapterCallback starts a session for the chosen chapter. On a load
// failure the chat stays at the menu with a human-readable notice.
func (h *Handler) handleChapterCallback(ctx context.Context, chatID int64, data callbackData) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	if len(data.Params) != 1 {
		h.logger.Debug("invalid chapter callback", zap.String("data", data.Raw))
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	session, err := h.quizService.SelectChapter(ctx, chatID, data.Params[0])
	if err != nil {
		h.logger.Warn("chapter load failed",
			zap.Int64("chat_id", chatID),
			zap.String("chapter_id", data.Params[0]),
			zap.Error(err),
		)
		return h.menuScreen(loadErrorNotice(err))
	}

	if session.Finished() {
		// Zero-question chapter: straight to the summary, no score bar.
		return h.summaryScreen(session)
	}

	return h.questionScreen(session)
}

// handleAnswerCallback records the chosen option and re-renders the question
// with the selection marked. Selecting when no answer is pending is a no-op.
func (h *Handler) handleAnswerCallback(chatID int64, data callbackData) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	if len(data.Params) != 1 {
		h.logger.Debug("invalid answer callback", zap.String("data", data.Raw))
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	label, err := entities.ParseLabel(data.Params[0])
	if err != nil {
		h.logger.Debug("invalid answer label", zap.String("data", data.Raw))
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	session, ok := h.quizService.SelectOption(chatID, label)
	if !ok {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	return h.questionScreen(session)
}

// handleSubmitCallback locks in the answer and shows the feedback screen.
// A stale Submit press after the answer is already locked in is a no-op.
func (h *Handler) handleSubmitCallback(chatID int64) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	session, answer, ok := h.quizService.Submit(chatID)
	if !ok {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	hasMore := session.Position < len(session.Order)
	return formatFeedback(session, answer), buildFeedbackKeyboard(hasMore), true
}

// handleNextCallback moves past the feedback screen to the next question or
// the summary.
func (h *Handler) handleNextCallback(chatID int64) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	session, ok := h.quizService.Next(chatID)
	if !ok {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	if session.Finished() {
		return h.summaryScreen(session)
	}

	return h.questionScreen(session)
}

// handleMenuCallback resets the session and renders the chapter menu in
// place of the current screen.
func (h *Handler) handleMenuCallback(chatID int64) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	h.quizService.Reset(chatID)
	return h.menuScreen("")
}

func (h *Handler) menuScreen(notice string) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	text := msgChooseChapter
	if notice != "" {
		text = notice + "\n\n" + text
	}
	return text, buildChapterMenuKeyboard(h.quizService.Chapters()), true
}

func (h *Handler) questionScreen(session *entities.Session) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	q, ok := session.Current()
	if !ok {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}
	return formatQuestionScreen(session), buildQuestionKeyboard(q, session.Selected), true
}

func (h *Handler) summaryScreen(session *entities.Session) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	return formatSummary(session), buildSummaryKeyboard(session.Chapter.ID), true
}

// loadErrorNotice maps a chapter load error to its user-facing notice.
func loadErrorNotice(err error) string {
	switch {
	case errors.Is(err, repository.ErrChapterNotFound):
		return msgChapterNotFound
	case errors.Is(err, repository.ErrChapterParse), errors.Is(err, repository.ErrChapterSchema):
		return msgChapterUnavailable
	default:
		return msgInternalError
	}
}
