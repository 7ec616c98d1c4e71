package telegram

import (
	"strings"

	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/domain/entities"
)

// Callback action constants.
const (
	actionMenu    = "menu"
	actionChapter = "chapter"
	actionAnswer  = "answer"
	actionSubmit  = "submit"
	actionNext    = "next"
	actionRetry   = "retry"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildMenuCallback builds callback data for returning to the chapter menu.
func buildMenuCallback() string {
	return callbackData{Action: actionMenu}.encode()
}

// buildChapterCallback builds callback data for selecting a chapter.
func buildChapterCallback(chapterID string) string {
	return callbackData{
		Action: actionChapter,
		Params: []string{chapterID},
	}.encode()
}

// buildAnswerCallback builds callback data for choosing an option.
func buildAnswerCallback(label entities.Label) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{string(label)},
	}.encode()
}

// buildSubmitCallback builds callback data for locking in the chosen option.
func buildSubmitCallback() string {
	return callbackData{Action: actionSubmit}.encode()
}

// buildNextCallback builds callback data for moving past the feedback screen.
func buildNextCallback() string {
	return callbackData{Action: actionNext}.encode()
}

// buildRetryCallback builds callback data for restarting the same chapter.
func buildRetryCallback(chapterID string) string {
	return callbackData{
		Action: actionRetry,
		Params: []string{chapterID},
	}.encode()
}
