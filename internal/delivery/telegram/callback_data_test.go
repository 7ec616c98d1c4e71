package telegram

import (
	"testing"

	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/domain/entities"
)

func TestDecodeCallbackRoundTrips(t *testing.T) {
	cases := map[string]struct {
		encoded string
		action  string
		params  []string
	}{
		"menu":    {buildMenuCallback(), actionMenu, nil},
		"chapter": {buildChapterCallback("chapter3"), actionChapter, []string{"chapter3"}},
		"answer":  {buildAnswerCallback(entities.LabelB), actionAnswer, []string{"B"}},
		"submit":  {buildSubmitCallback(), actionSubmit, nil},
		"next":    {buildNextCallback(), actionNext, nil},
		"retry":   {buildRetryCallback("chapter7"), actionRetry, []string{"chapter7"}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := decodeCallback(tc.encoded)
			if got.Action != tc.action {
				t.Errorf("action = %q, want %q", got.Action, tc.action)
			}
			if len(got.Params) != len(tc.params) {
				t.Fatalf("params = %v, want %v", got.Params, tc.params)
			}
			for i := range tc.params {
				if got.Params[i] != tc.params[i] {
					t.Errorf("params[%d] = %q, want %q", i, got.Params[i], tc.params[i])
				}
			}
			if got.Raw != tc.encoded {
				t.Errorf("raw = %q, want %q", got.Raw, tc.encoded)
			}
		})
	}
}

func TestDecodeCallbackUnknownData(t *testing.T) {
	got := decodeCallback("whatever:1:2")
	if got.Action != "whatever" {
		t.Errorf("action = %q, want %q", got.Action, "whatever")
	}
	if len(got.Params) != 2 {
		t.Errorf("params = %v, want two params", got.Params)
	}
}
