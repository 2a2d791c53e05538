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

// QuestionRepository provides access to pack questions in the database.
type QuestionRepository struct {
	db postgres.DBTX
}

// NewQuestionRepository creates a new QuestionRepository over a pool or transaction.
func NewQuestionRepository(db postgres.DBTX) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Create inserts a question and assigns it a generated ID.
func (r *QuestionRepository) Create(ctx context.Context, question *entities.Question) error {
	question.ID = uuid.New().String()

	query := `
		INSERT INTO questions (id, pack_id, text, image_url, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
	`

	_, err := r.db.Exec(
		ctx,
		query,
		question.ID,
		question.PackID,
		question.Text,
		question.ImageURL,
		question.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create question: %w", err)
	}

	return nil
}

// GetByID retrieves a question by its ID.
func (r *QuestionRepository) GetByID(ctx context.Context, id string) (*entities.Question, error) {
	query := `
		SELECT id, pack_id, text, COALESCE(image_url, ''), created_at
		FROM questions
		WHERE id = $1
	`

	var q entities.Question
	err := r.db.QueryRow(ctx, query, id).Scan(&q.ID, &q.PackID, &q.Text, &q.ImageURL, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}

	return &q, nil
}

// GetByPackID retrieves the questions of a pack in creation order.
// An unknown pack yields an empty slice, not an error.
func (r *QuestionRepository) GetByPackID(ctx context.Context, packID string) ([]*entities.Question, error) {
	query := `
		SELECT id, pack_id, text, COALESCE(image_url, ''), created_at
		FROM questions
		WHERE pack_id = $1
		ORDER BY seq
	`

	rows, err := r.db.Query(ctx, query, packID)
	if err != nil {
		return nil, fmt.Errorf("get questions by pack: %w", err)
	}
	defer rows.Close()

	var questions []*entities.Question
	for rows.Next() {
		var q entities.Question
		if err := rows.Scan(&q.ID, &q.PackID, &q.Text, &q.ImageURL, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	return questions, nil
}

// CountByPackID returns the number of questions in a pack.
func (r *QuestionRepository) CountByPackID(ctx context.Context, packID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM questions
		WHERE pack_id = $1
	`

	var count int
	if err := r.db.QueryRow(ctx, query, packID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count questions by pack: %w", err)
	}

	return count, nil
}

// GetByPackIDAndOrder retrieves the question at a zero-based position
// within the pack's creation order.
func (r *QuestionRepository) GetByPackIDAndOrder(ctx context.Context, packID string, index int) (*entities.Question, error) {
	query := `
		SELECT id, pack_id, text, COALESCE(image_url, ''), created_at
		FROM questions
		WHERE pack_id = $1
		ORDER BY seq
		OFFSET $2
		LIMIT 1
	`

	var q entities.Question
	err := r.db.QueryRow(ctx, query, packID, index).Scan(&q.ID, &q.PackID, &q.Text, &q.ImageURL, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question by order: %w", err)
	}

	return &q, nil
}
