package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/quizroom/quizroom/internal/config"
	"github.com/quizroom/quizroom/internal/delivery/httpapi"
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

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

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

	events := event.NewManager(
		event.NewLoggingObserver(zl),
		event.NewStatsObserver(),
	)
	if cfg.AMQP.URL != "" {
		publisher, err := event.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, zl)
		if err != nil {
			zl.Fatal("failed to connect to message broker", zap.Error(err))
		}
		defer publisher.Close()
		events.Register(publisher)
	} else {
		zl.Info("broker not configured, game events will not be published")
	}

	content := service.NewContentService(repos.Packs, repos.Questions, repos.Variants)
	sessions := service.NewSessionService(repos.Sessions, repos.Packs, repos.Questions, repos.Players, store, events)
	players := service.NewPlayerService(repos.Players, store, events)
	sequencer := service.NewSequencerService(repos.Sessions, repos.Questions, repos.Variants, repos.Players, store, events)
	judge := service.NewJudgeService(repos.Players, repos.Answers, store, events)
	results := service.NewResultsService(repos.Sessions, repos.Players)

	handler := httpapi.NewHandler(content, sessions, players, sequencer, judge, results, zl)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("http server started", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("http server shutdown", zap.Error(err))
	}
}
