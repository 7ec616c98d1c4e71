package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/domain/entities"
)

// buildChapterMenuKeyboard builds the chapter menu, one button per chapter.
func buildChapterMenuKeyboard(chapters []entities.Chapter) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(chapters))
	for _, chapter := range chapters {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(chapter.Title, buildChapterCallback(chapter.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuestionKeyboard builds the single-choice option keyboard for the
// current question. The chosen option is marked, and the Submit row only
// appears once an option is selected; after submitting, the feedback
// keyboard replaces this one, so Submit can never be pressed twice.
func buildQuestionKeyboard(q entities.Question, selected entities.Label) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	for _, opt := range q.Options {
		text := fmt.Sprintf("%s) %s", opt.Label, opt.Text)
		if opt.Label == selected {
			text = "🔘 " + text
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(text, buildAnswerCallback(opt.Label)),
		))
	}

	if selected != "" {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Submit", buildSubmitCallback()),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Back to menu", buildMenuCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildFeedbackKeyboard builds the keyboard shown with answer feedback.
func buildFeedbackKeyboard(hasMoreQuestions bool) tgbotapi.InlineKeyboardMarkup {
	nextText := "➡️ Next question"
	if !hasMoreQuestions {
		nextText = "🏁 Show results"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(nextText, buildNextCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back to menu", buildMenuCallback()),
		),
	)
}

// buildSummaryKeyboard builds the keyboard for the end-of-quiz screen.
func buildSummaryKeyboard(chapterID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Retry this chapter", buildRetryCallback(chapterID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back to menu", buildMenuCallback()),
		),
	)
}
