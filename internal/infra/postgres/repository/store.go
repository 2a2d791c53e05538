package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizroom/quizroom/internal/infra/postgres"
	"github.com/quizroom/quizroom/internal/service"
)

// Store wires the postgres repositories into the service layer: it hands
// out pool-bound repositories for standalone reads and writes, and
// implements service.Transactor for compound operations.
type Store struct {
	pool *pgxpool.Pool
	tr   *postgres.Transactor
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool: pool,
		tr:   postgres.NewTransactor(pool),
	}
}

// Repos returns repositories bound to the connection pool.
func (s *Store) Repos() service.Repos {
	return newRepos(s.pool)
}

// WithinTx runs fn with repositories bound to one transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, r service.Repos) error) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, newRepos(tx))
	})
}

func newRepos(db postgres.DBTX) service.Repos {
	return service.Repos{
		Packs:     NewPackRepository(db),
		Questions: NewQuestionRepository(db),
		Variants:  NewVariantRepository(db),
		Sessions:  NewGameSessionRepository(db),
		Players:   NewPlayerRepository(db),
		Answers:   NewAnswerRepository(db),
	}
}
