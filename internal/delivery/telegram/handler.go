package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/quizroom/quizroom/internal/domain/entities"
	"github.com/quizroom/quizroom/internal/service"
)

type ContentService interface {
	GetAllPacks(ctx context.Context) ([]*entities.Pack, error)
}

type SessionService interface {
	Create(ctx context.Context, packID string) (*entities.GameSession, error)
	Start(ctx context.Context, id string) (*entities.GameSession, error)
	End(ctx context.Context, id string) (*entities.GameSession, error)
}

type PlayerService interface {
	Add(ctx context.Context, gameSessionID, name string) (*entities.Player, error)
}

type SequencerService interface {
	Current(ctx context.Context, gameSessionID string) (*service.CurrentQuestion, error)
	Advance(ctx context.Context, gameSessionID string) (bool, error)
}

type JudgeService interface {
	Submit(ctx context.Context, playerID, questionID, variantID string) (*service.SubmitResult, error)
}

type ResultsService interface {
	Get(ctx context.Context, gameSessionID string) ([]*entities.Player, error)
}

type Handler struct {
	bot       *tgbotapi.BotAPI
	logger    *zap.Logger
	content   ContentService
	sessions  SessionService
	players   PlayerService
	sequencer SequencerService
	judge     JudgeService
	results   ResultsService
	games     *gameRegistry
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	content ContentService,
	sessions SessionService,
	players PlayerService,
	sequencer SequencerService,
	judge JudgeService,
	results ResultsService,
) *Handler {
	return &Handler{
		bot:       bot,
		logger:    logger,
		content:   content,
		sessions:  sessions,
		players:   players,
		sequencer: sequencer,
		judge:     judge,
		results:   results,
		games:     newGameRegistry(),
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

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	if !update.Message.IsCommand() {
		return
	}

	chatID := update.Message.Chat.ID

	switch update.Message.Command() {
	case "start":
		h.send(newHTMLMessage(chatID, msgWelcome))

	case "help":
		h.send(newHTMLMessage(chatID, msgHelp))

	case "newgame":
		h.handleNewGame(ctx, chatID)

	case "join":
		h.handleJoin(ctx, chatID, update.Message.From)

	case "results":
		h.handleResults(ctx, chatID)

	case "cancel":
		h.handleCancel(ctx, chatID)

	default:
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) sendError(chatID int64, err string) {
	h.send(newHTMLMessage(chatID, err))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}
