package service

import (
	"context"

	"github.com/quizroom/quizroom/internal/domain/entities"
)

type PackRepository interface {
	Create(ctx context.Context, pack *entities.Pack) error
	GetByID(ctx context.Context, id string) (*entities.Pack, error)
	GetAll(ctx context.Context) ([]*entities.Pack, error)
}

type QuestionRepository interface {
	Create(ctx context.Context, question *entities.Question) error
	GetByID(ctx context.Context, id string) (*entities.Question, error)
	GetByPackID(ctx context.Context, packID string) ([]*entities.Question, error)
	GetByPackIDAndOrder(ctx context.Context, packID string, index int) (*entities.Question, error)
	CountByPackID(ctx context.Context, packID string) (int, error)
}

type VariantRepository interface {
	Create(ctx context.Context, variant *entities.Variant) error
	GetByID(ctx context.Context, id string) (*entities.Variant, error)
	GetByQuestionID(ctx context.Context, questionID string) ([]*entities.Variant, error)
}

type GameSessionRepository interface {
	Create(ctx context.Context, session *entities.GameSession) error
	GetByID(ctx context.Context, id string) (*entities.GameSession, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entities.GameSession, error)
	GetAll(ctx context.Context) ([]*entities.GameSession, error)
	Update(ctx context.Context, session *entities.GameSession) error
}

type PlayerRepository interface {
	Create(ctx context.Context, player *entities.Player) error
	GetByID(ctx context.Context, id string) (*entities.Player, error)
	GetByGameSessionID(ctx context.Context, gameSessionID string) ([]*entities.Player, error)
	IncrementScore(ctx context.Context, playerID string, points int) (int, error)
}

type AnswerRepository interface {
	Create(ctx context.Context, answer *entities.Answer) error
	Exists(ctx context.Context, playerID, questionID string) (bool, error)
	GetByPlayerID(ctx context.Context, playerID string) ([]*entities.Answer, error)
	CountForQuestion(ctx context.Context, gameSessionID, questionID string) (int, error)
}

// Repos bundles every repository a transactional operation may touch.
type Repos struct {
	Packs     PackRepository
	Questions QuestionRepository
	Variants  VariantRepository
	Sessions  GameSessionRepository
	Players   PlayerRepository
	Answers   AnswerRepository
}

// Transactor runs fn with repositories bound to a single database
// transaction. Row locks taken via GetByIDForUpdate only serialize
// writers while the surrounding transaction is open, so every compound
// mutation goes through here.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, r Repos) error) error
}
