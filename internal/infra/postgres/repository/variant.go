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

// VariantRepository provides access to answer variants in the database.
type VariantRepository struct {
	db postgres.DBTX
}

// NewVariantRepository creates a new VariantRepository over a pool or transaction.
func NewVariantRepository(db postgres.DBTX) *VariantRepository {
	return &VariantRepository{db: db}
}

// Create inserts a variant and assigns it a generated ID.
func (r *VariantRepository) Create(ctx context.Context, variant *entities.Variant) error {
	variant.ID = uuid.New().String()

	query := `
		INSERT INTO variants (id, question_id, text, is_correct, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(
		ctx,
		query,
		variant.ID,
		variant.QuestionID,
		variant.Text,
		variant.IsCorrect,
		variant.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create variant: %w", err)
	}

	return nil
}

// GetByID retrieves a variant by its ID.
func (r *VariantRepository) GetByID(ctx context.Context, id string) (*entities.Variant, error) {
	query := `
		SELECT id, question_id, text, is_correct, created_at
		FROM variants
		WHERE id = $1
	`

	var v entities.Variant
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.QuestionID, &v.Text, &v.IsCorrect, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrVariantNotFound
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}

	return &v, nil
}

// GetByQuestionID retrieves the variants of a question in creation order.
// An unknown question yields an empty slice, not an error.
func (r *VariantRepository) GetByQuestionID(ctx context.Context, questionID string) ([]*entities.Variant, error) {
	query := `
		SELECT id, question_id, text, is_correct, created_at
		FROM variants
		WHERE question_id = $1
		ORDER BY seq
	`

	rows, err := r.db.Query(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("get variants by question: %w", err)
	}
	defer rows.Close()

	var variants []*entities.Variant
	for rows.Next() {
		var v entities.Variant
		if err := rows.Scan(&v.ID, &v.QuestionID, &v.Text, &v.IsCorrect, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		variants = append(variants, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate variants: %w", err)
	}

	return variants, nil
}
