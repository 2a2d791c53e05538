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

// PlayerRepository provides access to session players in the database.
type PlayerRepository struct {
	db postgres.DBTX
}

// NewPlayerRepository creates a new PlayerRepository over a pool or transaction.
func NewPlayerRepository(db postgres.DBTX) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create inserts a player and assigns it a generated ID.
func (r *PlayerRepository) Create(ctx context.Context, player *entities.Player) error {
	player.ID = uuid.New().String()

	query := `
		INSERT INTO players (id, game_session_id, name, score, joined_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(
		ctx,
		query,
		player.ID,
		player.GameSessionID,
		player.Name,
		player.Score,
		player.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}

	return nil
}

// GetByID retrieves a player by its ID.
func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*entities.Player, error) {
	query := `
		SELECT id, game_session_id, name, score, joined_at
		FROM players
		WHERE id = $1
	`

	var p entities.Player
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.GameSessionID, &p.Name, &p.Score, &p.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("get player: %w", err)
	}

	return &p, nil
}

// GetByGameSessionID retrieves the players of a session in join order.
// An unknown session yields an empty slice, not an error.
func (r *PlayerRepository) GetByGameSessionID(ctx context.Context, gameSessionID string) ([]*entities.Player, error) {
	query := `
		SELECT id, game_session_id, name, score, joined_at
		FROM players
		WHERE game_session_id = $1
		ORDER BY seq
	`

	rows, err := r.db.Query(ctx, query, gameSessionID)
	if err != nil {
		return nil, fmt.Errorf("get players by session: %w", err)
	}
	defer rows.Close()

	var players []*entities.Player
	for rows.Next() {
		var p entities.Player
		if err := rows.Scan(&p.ID, &p.GameSessionID, &p.Name, &p.Score, &p.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}

	return players, nil
}

// IncrementScore atomically credits points to a player and returns the
// new score. The score column never moves backwards.
func (r *PlayerRepository) IncrementScore(ctx context.Context, playerID string, points int) (int, error) {
	query := `
		UPDATE players
		SET score = score + $1
		WHERE id = $2
		RETURNING score
	`

	var score int
	err := r.db.QueryRow(ctx, query, points, playerID).Scan(&score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, entities.ErrPlayerNotFound
		}
		return 0, fmt.Errorf("increment player score: %w", err)
	}

	return score, nil
}
