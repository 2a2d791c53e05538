package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/quizroom/quizroom/internal/domain/entities"
	"github.com/quizroom/quizroom/internal/infra/postgres"
)

const uniqueViolation = "23505"

// AnswerRepository provides access to recorded answers in the database.
// Answers are append-only; there is no update or delete.
type AnswerRepository struct {
	db postgres.DBTX
}

// NewAnswerRepository creates a new AnswerRepository over a pool or transaction.
func NewAnswerRepository(db postgres.DBTX) *AnswerRepository {
	return &AnswerRepository{db: db}
}

// Create records an answer and assigns it a generated ID. The unique
// index on (player_id, question_id) is the last line of defense against
// double scoring; its violation surfaces as entities.ErrAnswerAlreadySubmitted.
func (r *AnswerRepository) Create(ctx context.Context, answer *entities.Answer) error {
	answer.ID = uuid.New().String()

	query := `
		INSERT INTO answers (id, player_id, question_id, variant_id, is_correct, answered_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(
		ctx,
		query,
		answer.ID,
		answer.PlayerID,
		answer.QuestionID,
		answer.VariantID,
		answer.IsCorrect,
		answer.AnsweredAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entities.ErrAnswerAlreadySubmitted
		}
		return fmt.Errorf("create answer: %w", err)
	}

	return nil
}

// Exists reports whether the player already answered the question.
func (r *AnswerRepository) Exists(ctx context.Context, playerID, questionID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM answers
			WHERE player_id = $1 AND question_id = $2
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, playerID, questionID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check answer exists: %w", err)
	}

	return exists, nil
}

// GetByPlayerID retrieves a player's answers ordered by submission time.
func (r *AnswerRepository) GetByPlayerID(ctx context.Context, playerID string) ([]*entities.Answer, error) {
	query := `
		SELECT id, player_id, question_id, variant_id, is_correct, answered_at
		FROM answers
		WHERE player_id = $1
		ORDER BY answered_at, seq
	`

	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("get answers by player: %w", err)
	}
	defer rows.Close()

	var answers []*entities.Answer
	for rows.Next() {
		var a entities.Answer
		err := rows.Scan(&a.ID, &a.PlayerID, &a.QuestionID, &a.VariantID, &a.IsCorrect, &a.AnsweredAt)
		if err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers = append(answers, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}

	return answers, nil
}

// CountForQuestion returns how many players of a session have answered
// the given question.
func (r *AnswerRepository) CountForQuestion(ctx context.Context, gameSessionID, questionID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM answers a
		JOIN players p ON p.id = a.player_id
		WHERE p.game_session_id = $1 AND a.question_id = $2
	`

	var count int
	if err := r.db.QueryRow(ctx, query, gameSessionID, questionID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count answers for question: %w", err)
	}

	return count, nil
}
