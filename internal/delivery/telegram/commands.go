package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/quizroom/quizroom/internal/domain/entities"
)

func (h *Handler) handleNewGame(ctx context.Context, chatID int64) {
	if _, ok := h.games.get(chatID); ok {
		h.sendError(chatID, msgGameInProgress)
		return
	}

	packs, err := h.content.GetAllPacks(ctx)
	if err != nil {
		h.logger.Error("failed to list packs", zap.Error(err))
		h.sendError(chatID, msgInternalError)
		return
	}
	if len(packs) == 0 {
		h.sendError(chatID, msgNoPacks)
		return
	}

	msg := newHTMLMessage(chatID, msgChoosePack)
	msg.ReplyMarkup = buildPackKeyboard(packs)
	h.send(msg)
}

func (h *Handler) handleJoin(ctx context.Context, chatID int64, from *tgbotapi.User) {
	game, ok := h.games.get(chatID)
	if !ok {
		h.sendError(chatID, msgNoActiveGame)
		return
	}

	if _, joined := game.players[from.ID]; joined {
		return
	}

	player, err := h.players.Add(ctx, game.sessionID, displayName(from))
	if err != nil {
		h.logger.Error("failed to add player",
			zap.String("game_session_id", game.sessionID),
			zap.Error(err),
		)
		h.sendError(chatID, msgJoinTooLate)
		return
	}

	game.players[from.ID] = player.ID
	h.send(newHTMLMessage(chatID, formatJoined(player.Name)))
}

func (h *Handler) handleResults(ctx context.Context, chatID int64) {
	game, ok := h.games.get(chatID)
	if !ok {
		h.sendError(chatID, msgNoActiveGame)
		return
	}

	h.showResults(ctx, chatID, game.sessionID)
}

func (h *Handler) handleCancel(ctx context.Context, chatID int64) {
	game, ok := h.games.get(chatID)
	if !ok {
		h.sendError(chatID, msgNoActiveGame)
		return
	}

	if _, err := h.sessions.End(ctx, game.sessionID); err != nil {
		// Ending an already finished game is fine; the chat state goes
		// away either way.
		h.logger.Debug("cancel end session",
			zap.String("game_session_id", game.sessionID),
			zap.Error(err),
		)
	}

	h.games.delete(chatID)
	h.send(newHTMLMessage(chatID, msgGameCanceled))
}

func (h *Handler) showResults(ctx context.Context, chatID int64, sessionID string) {
	players, err := h.results.Get(ctx, sessionID)
	if err != nil {
		h.logger.Error("failed to get results",
			zap.String("game_session_id", sessionID),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return
	}

	h.send(newHTMLMessage(chatID, formatResults(players)))
}

func (h *Handler) showQuestion(ctx context.Context, chatID int64, game *chatGame) {
	cur, err := h.sequencer.Current(ctx, game.sessionID)
	if errors.Is(err, entities.ErrQuestionsExhausted) {
		// Running out of questions ends the game from the bot's side.
		h.showResults(ctx, chatID, game.sessionID)
		h.games.delete(chatID)
		return
	}
	if err != nil {
		h.logger.Error("failed to get current question",
			zap.String("game_session_id", game.sessionID),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return
	}

	game.questionID = cur.Question.ID
	game.resetAnswered()

	msg := newHTMLMessage(chatID, formatQuestion(cur))
	msg.ReplyMarkup = buildAnswerKeyboard(cur)
	h.send(msg)
}

func displayName(from *tgbotapi.User) string {
	if from.FirstName != "" {
		return from.FirstName
	}
	if from.UserName != "" {
		return from.UserName
	}
	return "Игрок"
}
