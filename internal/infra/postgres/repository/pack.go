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

// PackRepository provides access to question packs in the database.
type PackRepository struct {
	db postgres.DBTX
}

// NewPackRepository creates a new PackRepository over a pool or transaction.
func NewPackRepository(db postgres.DBTX) *PackRepository {
	return &PackRepository{db: db}
}

// Create inserts a pack and assigns it a generated ID.
func (r *PackRepository) Create(ctx context.Context, pack *entities.Pack) error {
	pack.ID = uuid.New().String()

	query := `
		INSERT INTO packs (id, title, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, pack.ID, pack.Title, pack.CreatedAt)
	if err != nil {
		return fmt.Errorf("create pack: %w", err)
	}

	return nil
}

// GetByID retrieves a pack by its ID.
func (r *PackRepository) GetByID(ctx context.Context, id string) (*entities.Pack, error) {
	query := `
		SELECT id, title, created_at
		FROM packs
		WHERE id = $1
	`

	var pack entities.Pack
	err := r.db.QueryRow(ctx, query, id).Scan(&pack.ID, &pack.Title, &pack.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrPackNotFound
		}
		return nil, fmt.Errorf("get pack: %w", err)
	}

	return &pack, nil
}

// GetAll retrieves every pack in creation order.
func (r *PackRepository) GetAll(ctx context.Context) ([]*entities.Pack, error) {
	query := `
		SELECT id, title, created_at
		FROM packs
		ORDER BY seq
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all packs: %w", err)
	}
	defer rows.Close()

	var packs []*entities.Pack
	for rows.Next() {
		var pack entities.Pack
		if err := rows.Scan(&pack.ID, &pack.Title, &pack.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pack: %w", err)
		}
		packs = append(packs, &pack)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate packs: %w", err)
	}

	return packs, nil
}
