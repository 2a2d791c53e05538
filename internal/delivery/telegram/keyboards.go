package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/quizroom/quizroom/internal/domain/entities"
	"github.com/quizroom/quizroom/internal/service"
)

// Callback data prefixes.
const (
	cbPack   = "pack:"
	cbAnswer = "answer:"
	cbStart  = "game:start"
	cbCancel = "game:cancel"
)

// buildPackKeyboard builds the pack selection keyboard, one pack per row.
func buildPackKeyboard(packs []*entities.Pack) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(packs))
	for _, p := range packs {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(p.Title, cbPack+p.ID),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildLobbyKeyboard builds the waiting room keyboard.
func buildLobbyKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Начать игру", cbStart),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Отменить", cbCancel),
		),
	)
}

// buildAnswerKeyboard builds the variant keyboard for a question. Only
// the variant ID goes into the callback data: Telegram caps
// callback_data at 64 bytes, and two UUIDs do not fit. The question the
// variant belongs to lives in the chat's game state.
func buildAnswerKeyboard(cur *service.CurrentQuestion) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(cur.Variants))
	for _, v := range cur.Variants {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(v.Text, cbAnswer+v.ID),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
