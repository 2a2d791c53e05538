package telegram

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/quizroom/quizroom/internal/domain/entities"
	"github.com/quizroom/quizroom/internal/service"
)

// Telegram rejects inline keyboards whose callback_data exceeds 64
// bytes, so every button the bot builds has to stay under that cap
// even with full-length UUID identifiers.
const callbackDataLimit = 64

func TestAnswerKeyboardCallbackDataFitsLimit(t *testing.T) {
	cur := &service.CurrentQuestion{
		Question: &entities.Question{ID: uuid.NewString(), Text: "2+2?"},
		Variants: []*entities.Variant{
			{ID: uuid.NewString(), Text: "3"},
			{ID: uuid.NewString(), Text: "4"},
			{ID: uuid.NewString(), Text: "5"},
		},
		Index: 0,
		Total: 1,
	}

	kb := buildAnswerKeyboard(cur)
	if len(kb.InlineKeyboard) != len(cur.Variants) {
		t.Fatalf("expected %d rows, got %d", len(cur.Variants), len(kb.InlineKeyboard))
	}

	for i, row := range kb.InlineKeyboard {
		data := *row[0].CallbackData
		if len(data) > callbackDataLimit {
			t.Errorf("row %d callback data is %d bytes, over the %d byte limit: %q",
				i, len(data), callbackDataLimit, data)
		}
		want := cbAnswer + cur.Variants[i].ID
		if data != want {
			t.Errorf("row %d callback data = %q, want %q", i, data, want)
		}
	}
}

func TestAnswerKeyboardDataRoundTrips(t *testing.T) {
	variantID := uuid.NewString()
	cur := &service.CurrentQuestion{
		Question: &entities.Question{ID: uuid.NewString(), Text: "q"},
		Variants: []*entities.Variant{{ID: variantID, Text: "v"}},
		Total:    1,
	}

	kb := buildAnswerKeyboard(cur)
	data := *kb.InlineKeyboard[0][0].CallbackData

	if !strings.HasPrefix(data, cbAnswer) {
		t.Fatalf("callback data %q missing the %q prefix", data, cbAnswer)
	}
	if got := strings.TrimPrefix(data, cbAnswer); got != variantID {
		t.Errorf("decoded variant ID = %q, want %q", got, variantID)
	}
}

func TestPackKeyboardCallbackDataFitsLimit(t *testing.T) {
	packs := []*entities.Pack{
		{ID: uuid.NewString(), Title: "Общие знания"},
		{ID: uuid.NewString(), Title: "Программирование"},
	}

	kb := buildPackKeyboard(packs)
	for i, row := range kb.InlineKeyboard {
		data := *row[0].CallbackData
		if len(data) > callbackDataLimit {
			t.Errorf("row %d callback data is %d bytes, over the %d byte limit: %q",
				i, len(data), callbackDataLimit, data)
		}
	}
}
