package telegram

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/quizroom/quizroom/internal/domain/entities"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	switch {
	case strings.HasPrefix(cb.Data, cbPack):
		h.handlePackSelected(ctx, cb)
	case cb.Data == cbStart:
		h.handleStartGame(ctx, cb)
	case cb.Data == cbCancel:
		h.handleCancelGame(ctx, cb)
	case strings.HasPrefix(cb.Data, cbAnswer):
		h.handleAnswer(ctx, cb)
	default:
		return
	}

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, "")
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}

func (h *Handler) handlePackSelected(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	packID := strings.TrimPrefix(cb.Data, cbPack)

	if _, ok := h.games.get(chatID); ok {
		h.sendError(chatID, msgGameInProgress)
		return
	}

	session, err := h.sessions.Create(ctx, packID)
	if err != nil {
		h.logger.Error("failed to create game session",
			zap.String("pack_id", packID),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return
	}

	player, err := h.players.Add(ctx, session.ID, displayName(cb.From))
	if err != nil {
		h.logger.Error("failed to add creator",
			zap.String("game_session_id", session.ID),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return
	}

	game := &chatGame{
		sessionID: session.ID,
		players:   map[int64]string{cb.From.ID: player.ID},
	}
	game.resetAnswered()
	h.games.put(chatID, game)

	edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, formatLobby([]string{player.Name}))
	edit.ParseMode = tgbotapi.ModeHTML
	kb := buildLobbyKeyboard()
	edit.ReplyMarkup = &kb
	h.send(edit)
}

func (h *Handler) handleStartGame(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID

	game, ok := h.games.get(chatID)
	if !ok {
		h.sendError(chatID, msgNoActiveGame)
		return
	}

	if _, err := h.sessions.Start(ctx, game.sessionID); err != nil {
		h.logger.Error("failed to start game",
			zap.String("game_session_id", game.sessionID),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return
	}

	edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, msgGameStarted)
	h.send(edit)

	h.showQuestion(ctx, chatID, game)
}

func (h *Handler) handleCancelGame(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID

	game, ok := h.games.get(chatID)
	if !ok {
		return
	}

	if _, err := h.sessions.End(ctx, game.sessionID); err != nil {
		h.logger.Debug("cancel end session",
			zap.String("game_session_id", game.sessionID),
			zap.Error(err),
		)
	}
	h.games.delete(chatID)

	edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, msgGameCanceled)
	h.send(edit)
}

func (h *Handler) handleAnswer(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID

	game, ok := h.games.get(chatID)
	if !ok {
		return
	}

	playerID, joined := game.players[cb.From.ID]
	if !joined {
		h.answerAlert(cb, msgNotInGame)
		return
	}

	variantID := strings.TrimPrefix(cb.Data, cbAnswer)
	questionID := game.questionID
	if questionID == "" {
		return
	}

	result, err := h.judge.Submit(ctx, playerID, questionID, variantID)
	if errors.Is(err, entities.ErrAnswerAlreadySubmitted) {
		h.answerAlert(cb, msgAlreadyAnswered)
		return
	}
	// A tap on a keyboard from a previous question carries a variant
	// that no longer matches the shown question.
	if errors.Is(err, entities.ErrVariantNotFound) {
		h.answerAlert(cb, msgQuestionClosed)
		return
	}
	if err != nil {
		h.logger.Error("failed to submit answer",
			zap.String("player_id", playerID),
			zap.String("variant_id", variantID),
			zap.Error(err),
		)
		h.answerAlert(cb, msgInternalError)
		return
	}

	verdict := msgAnswerIncorrect
	if result.IsCorrect {
		verdict = msgAnswerCorrect
	}
	h.answerAlert(cb, verdict)

	game.answered[cb.From.ID] = true

	if result.GameFinished {
		h.showResults(ctx, chatID, game.sessionID)
		h.games.delete(chatID)
		return
	}

	if len(game.answered) < len(game.players) {
		h.send(newHTMLMessage(chatID, msgWaitingForOthers))
		return
	}

	// Everyone answered: move on.
	hasMore, err := h.sequencer.Advance(ctx, game.sessionID)
	if err != nil {
		h.logger.Error("failed to advance question",
			zap.String("game_session_id", game.sessionID),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return
	}
	if !hasMore {
		h.showResults(ctx, chatID, game.sessionID)
		h.games.delete(chatID)
		return
	}

	h.showQuestion(ctx, chatID, game)
}

// answerAlert shows a popup to the tapping user without posting to the chat.
func (h *Handler) answerAlert(cb *tgbotapi.CallbackQuery, text string) {
	alert := tgbotapi.NewCallbackWithAlert(cb.ID, text)
	if _, err := h.bot.Request(alert); err != nil {
		h.logger.Debug("callback alert error", zap.Error(err))
	}
}
