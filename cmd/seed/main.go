package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/quizroom/quizroom/internal/config"
	"github.com/quizroom/quizroom/internal/infra/postgres"
	"github.com/quizroom/quizroom/internal/infra/postgres/repository"
	"github.com/quizroom/quizroom/internal/logger"
	"github.com/quizroom/quizroom/internal/service"
)

type variantSeed struct {
	text      string
	isCorrect bool
}

type questionSeed struct {
	text     string
	variants []variantSeed
}

type packSeed struct {
	title     string
	questions []questionSeed
}

var samplePacks = []packSeed{
	{
		title: "Общие знания",
		questions: []questionSeed{
			{
				text: "Какая столица России?",
				variants: []variantSeed{
					{"Москва", true},
					{"Санкт-Петербург", false},
					{"Казань", false},
					{"Новосибирск", false},
				},
			},
			{
				text: "Сколько будет 2 + 2?",
				variants: []variantSeed{
					{"3", false},
					{"4", true},
					{"5", false},
					{"22", false},
				},
			},
			{
				text: "Какая база данных используется в проекте?",
				variants: []variantSeed{
					{"MySQL", false},
					{"MongoDB", false},
					{"PostgreSQL", true},
					{"SQLite", false},
				},
			},
		},
	},
	{
		title: "Программирование",
		questions: []questionSeed{
			{
				text: "Что такое рекурсия?",
				variants: []variantSeed{
					{"Цикл for", false},
					{"Функция, вызывающая саму себя", true},
					{"Тип данных", false},
					{"Оператор условия", false},
				},
			},
			{
				text: "Какая сложность у бинарного поиска?",
				variants: []variantSeed{
					{"O(n)", false},
					{"O(log n)", true},
					{"O(n²)", false},
					{"O(1)", false},
				},
			},
			{
				text: "Что означает SOLID в программировании?",
				variants: []variantSeed{
					{"Название языка", false},
					{"Принципы ООП", true},
					{"Тип данных", false},
					{"Паттерн проектирования", false},
				},
			},
		},
	},
}

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

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	repos := repository.NewStore(pool).Repos()
	content := service.NewContentService(repos.Packs, repos.Questions, repos.Variants)

	for _, p := range samplePacks {
		pack, err := content.CreatePack(ctx, p.title)
		if err != nil {
			zl.Fatal("failed to create pack", zap.String("title", p.title), zap.Error(err))
		}

		for _, q := range p.questions {
			question, err := content.CreateQuestion(ctx, pack.ID, q.text, "")
			if err != nil {
				zl.Fatal("failed to create question", zap.String("text", q.text), zap.Error(err))
			}
			for _, v := range q.variants {
				if _, err := content.CreateVariant(ctx, question.ID, v.text, v.isCorrect); err != nil {
					zl.Fatal("failed to create variant", zap.String("text", v.text), zap.Error(err))
				}
			}
		}

		zl.Info("pack created",
			zap.String("id", pack.ID),
			zap.String("title", pack.Title),
			zap.Int("questions", len(p.questions)),
		)
	}

	zl.Info("sample data created")
}
