// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/domain/entities"
)

// User-facing messages.
const (
	msgWelcome = "👋 Welcome to the <b>CFA ESG Quiz</b>!\n\n" +
		"Test yourself chapter by chapter on the CFA Certificate in ESG Investing curriculum. " +
		"Each quiz shuffles its questions, gives you three options per question and explains every answer.\n\n" +
		"Pick a chapter below to start, or use /chapters to see the menu again."
	msgChooseChapter = "📚 <b>Quiz Menu</b>\n\nPlease choose which chapter quiz you want to take:"
	msgHelp          = "Commands:\n\n" +
		"/start — show the welcome screen and the chapter menu\n" +
		"/chapters — show the chapter menu\n" +
		"/help — show this help\n\n" +
		"During a quiz, tap an option to select it, then Submit to lock it in. " +
		"You can return to the menu at any time; your score is kept only for the current run."
	msgUnknownCommand = "Unknown command. Use /chapters to pick a chapter quiz or /help for help."

	msgChapterNotFound    = "⚠️ That chapter is not available. Please pick another one."
	msgChapterUnavailable = "⚠️ The chapter questions could not be loaded. Please pick another chapter."
	msgInternalError      = "Something went wrong. Please try again."
)

const scoreBarLength = 10

// formatQuestionScreen renders the current question of a session.
func formatQuestionScreen(session *entities.Session) string {
	q, ok := session.Current()
	if !ok {
		return ""
	}

	return fmt.Sprintf(
		"📖 %s\n\n<b>Question %d of %d</b>\n\n%s",
		html.EscapeString(session.Chapter.Title),
		session.Position+1,
		len(session.Order),
		html.EscapeString(q.Text),
	)
}

// formatFeedback renders the verdict, explanation and running score for the
// question that was just answered.
func formatFeedback(session *entities.Session, answer entities.Answer) string {
	var b strings.Builder

	if answer.Correct {
		b.WriteString("✅ <b>Correct!</b>")
	} else {
		correct := answer.Question.CorrectOption()
		b.WriteString(fmt.Sprintf(
			"❌ <b>Incorrect!</b> The correct answer is %s) %s",
			correct.Label,
			html.EscapeString(correct.Text),
		))
	}

	b.WriteString(fmt.Sprintf(
		"\n\n<b>Question %d of %d:</b> %s",
		answer.Number,
		answer.Total,
		html.EscapeString(answer.Question.Text),
	))

	if answer.Question.Explanation != "" {
		b.WriteString("\n\n💡 ")
		b.WriteString(html.EscapeString(answer.Question.Explanation))
	}

	if bar := formatScoreBar(session); bar != "" {
		b.WriteString("\n\n")
		b.WriteString(bar)
	}

	return b.String()
}

// formatSummary renders the end-of-quiz screen.
func formatSummary(session *entities.Session) string {
	var b strings.Builder

	b.WriteString("🏁 <b>Quiz finished!</b> You've gone through all the questions of ")
	b.WriteString(html.EscapeString(session.Chapter.Title))
	b.WriteString(".")

	if bar := formatScoreBar(session); bar != "" {
		b.WriteString("\n\n")
		b.WriteString(bar)
	}

	return b.String()
}

// formatScoreBar renders the green/red score bar as a text bar plus the
// correct/answered ratio. Nothing is rendered before the first answer,
// since the percentage is undefined then.
func formatScoreBar(session *entities.Session) string {
	percentage, ok := session.ScorePercent()
	if !ok {
		return ""
	}

	filled := int(percentage / 100 * scoreBarLength)
	if filled > scoreBarLength {
		filled = scoreBarLength
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", scoreBarLength-filled)

	return fmt.Sprintf(
		"[%s]\nCorrect: %d / %d (%.1f%%)",
		bar,
		session.Score,
		session.Position,
		percentage,
	)
}

// newHTMLMessage creates a message with HTML parse mode.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// newHTMLEdit creates a message edit with HTML parse mode.
func newHTMLEdit(chatID int64, messageID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	return edit
}
