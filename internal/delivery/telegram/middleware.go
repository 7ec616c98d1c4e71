package telegram

import (
	"context"

	"go.uber.org/zap"
)

// HandlerFunc is a chat-scoped command handler.
type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling consumes a handler failure: it logs the error and tells
// the chat something went wrong instead of leaving the quiz silently stuck.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			h.logger.Error("command handler failed",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
		}
		return nil
	}
}
