package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/quizroom/quizroom/internal/config"
	"github.com/quizroom/quizroom/internal/delivery/telegram"
	"github.com/quizroom/quizroom/internal/event"
	"github.com/quizroom/quizroom/internal/infra/postgres"
	"github.com/quizroom/quizroom/internal/infra/postgres/repository"
	"github.com/quizroom/quizroom/internal/logger"
	"github.com/quizroom/quizroom/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.TelegramAPIToken == "" {
		log.Fatal(config.ErrMissingEnvironmentVariables)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create bot", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Запустить бота",
		},
		{
			Command:     "newgame",
			Description: "Создать новую игру",
		},
		{
			Command:     "join",
			Description: "Присоединиться к игре",
		},
		{
			Command:     "results",
			Description: "Показать результаты",
		},
		{
			Command:     "cancel",
			Description: "Отменить текущую игру",
		},
		{
			Command:     "help",
			Description: "Помощь",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	zl.Info("authorized", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	store := repository.NewStore(pool)
	repos := store.Repos()

	events := event.NewManager(event.NewLoggingObserver(zl))

	content := service.NewContentService(repos.Packs, repos.Questions, repos.Variants)
	sessions := service.NewSessionService(repos.Sessions, repos.Packs, repos.Questions, repos.Players, store, events)
	players := service.NewPlayerService(repos.Players, store, events)
	sequencer := service.NewSequencerService(repos.Sessions, repos.Questions, repos.Variants, repos.Players, store, events)
	judge := service.NewJudgeService(repos.Players, repos.Answers, store, events)
	results := service.NewResultsService(repos.Sessions, repos.Players)

	handler := telegram.NewHandler(bot, zl, content, sessions, players, sequencer, judge, results)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zl.Fatal("telegram handler failed", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
