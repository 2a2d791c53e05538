package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/quizroom/quizroom/internal/domain/entities"
	"github.com/quizroom/quizroom/internal/infra/postgres"
)

const sessionColumns = `id, pack_id, state, current_question_index, created_at, started_at, finished_at`

// GameSessionRepository provides access to game sessions in the database.
type GameSessionRepository struct {
	db postgres.DBTX
}

// NewGameSessionRepository creates a new GameSessionRepository over a pool or transaction.
func NewGameSessionRepository(db postgres.DBTX) *GameSessionRepository {
	return &GameSessionRepository{db: db}
}

// Create inserts a session and assigns it a generated ID.
func (r *GameSessionRepository) Create(ctx context.Context, session *entities.GameSession) error {
	session.ID = uuid.New().String()

	query := `
		INSERT INTO game_sessions (
			id, pack_id, state, current_question_index,
			created_at, started_at, finished_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(
		ctx,
		query,
		session.ID,
		session.PackID,
		session.State,
		session.CurrentQuestionIndex,
		session.CreatedAt,
		session.StartedAt,
		session.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("create game session: %w", err)
	}

	return nil
}

// GetByID retrieves a session by its ID.
func (r *GameSessionRepository) GetByID(ctx context.Context, id string) (*entities.GameSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM game_sessions
		WHERE id = $1
	`

	return r.scanSession(r.db.QueryRow(ctx, query, id))
}

// GetByIDForUpdate retrieves a session with a row-level lock, serializing
// concurrent state transitions and cursor moves on the same session.
func (r *GameSessionRepository) GetByIDForUpdate(ctx context.Context, id string) (*entities.GameSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM game_sessions
		WHERE id = $1
		FOR UPDATE
	`

	return r.scanSession(r.db.QueryRow(ctx, query, id))
}

// GetAll retrieves every session, newest first.
func (r *GameSessionRepository) GetAll(ctx context.Context) ([]*entities.GameSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM game_sessions
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all game sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*entities.GameSession
	for rows.Next() {
		var gs entities.GameSession
		err := rows.Scan(
			&gs.ID,
			&gs.PackID,
			&gs.State,
			&gs.CurrentQuestionIndex,
			&gs.CreatedAt,
			&gs.StartedAt,
			&gs.FinishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan game session: %w", err)
		}
		sessions = append(sessions, &gs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate game sessions: %w", err)
	}

	return sessions, nil
}

// Update persists the session's state, cursor, and transition timestamps.
func (r *GameSessionRepository) Update(ctx context.Context, session *entities.GameSession) error {
	query := `
		UPDATE game_sessions
		SET state = $1,
		    current_question_index = $2,
		    started_at = $3,
		    finished_at = $4
		WHERE id = $5
	`

	result, err := r.db.Exec(
		ctx,
		query,
		session.State,
		session.CurrentQuestionIndex,
		session.StartedAt,
		session.FinishedAt,
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("update game session: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entities.ErrSessionNotFound
	}

	return nil
}

func (r *GameSessionRepository) scanSession(row pgx.Row) (*entities.GameSession, error) {
	var gs entities.GameSession
	err := row.Scan(
		&gs.ID,
		&gs.PackID,
		&gs.State,
		&gs.CurrentQuestionIndex,
		&gs.CreatedAt,
		&gs.StartedAt,
		&gs.FinishedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get game session: %w", err)
	}

	return &gs, nil
}
