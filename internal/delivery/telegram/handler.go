// Package telegram delivers the chapter quiz over the Telegram bot API. It
// renders session state and invokes the defined transitions; it never
// mutates session fields directly.
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/domain/entities"
)

type QuizService interface {
	Chapters() []entities.Chapter
	SelectChapter(ctx context.Context, chatID int64, chapterID string) (*entities.Session, error)
	SelectOption(chatID int64, label entities.Label) (*entities.Session, bool)
	Submit(chatID int64) (*entities.Session, entities.Answer, bool)
	Next(chatID int64) (*entities.Session, bool)
	Reset(chatID int64)
}

type Handler struct {
	bot         *tgbotapi.BotAPI
	logger      *zap.Logger
	quizService QuizService
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	quizService QuizService,
) *Handler {
	return &Handler{
		bot:         bot,
		logger:      logger,
		quizService: quizService,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	chatID := update.Message.Chat.ID
	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", update.Message.Text),
	)

	if !update.Message.IsCommand() {
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
		return
	}

	switch update.Message.Command() {
	case "start":
		_ = h.withErrorHandling(h.startHandler())(ctx, chatID)

	case "chapters":
		_ = h.withErrorHandling(h.menuHandler())(ctx, chatID)

	case "help":
		h.send(newHTMLMessage(chatID, msgHelp))

	default:
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

// startHandler shows the welcome message and a fresh chapter menu.
func (h *Handler) startHandler() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		if _, err := h.bot.Send(newHTMLMessage(chatID, msgWelcome)); err != nil {
			return fmt.Errorf("send welcome: %w", err)
		}
		return h.sendMenu(chatID, "")
	}
}

// menuHandler shows the chapter menu, resetting any running session so no
// stale score or position can leak into the next attempt.
func (h *Handler) menuHandler() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		h.quizService.Reset(chatID)
		return h.sendMenu(chatID, "")
	}
}

// sendMenu sends the chapter menu, optionally prefixed with an error notice.
func (h *Handler) sendMenu(chatID int64, notice string) error {
	text := msgChooseChapter
	if notice != "" {
		text = notice + "\n\n" + text
	}

	msg := newHTMLMessage(chatID, text)
	msg.ReplyMarkup = buildChapterMenuKeyboard(h.quizService.Chapters())

	if _, err := h.bot.Send(msg); err != nil {
		return fmt.Errorf("send chapter menu: %w", err)
	}
	return nil
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newHTMLMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
