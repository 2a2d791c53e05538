package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/quizroom/quizroom/internal/domain/entities"
)

// ContentService owns quiz content: packs, their questions, and the
// questions' answer variants. Content is append-only; nothing here is
// ever updated or deleted.
type ContentService struct {
	packs     PackRepository
	questions QuestionRepository
	variants  VariantRepository
}

func NewContentService(
	packs PackRepository,
	questions QuestionRepository,
	variants VariantRepository,
) *ContentService {
	return &ContentService{
		packs:     packs,
		questions: questions,
		variants:  variants,
	}
}

// CreatePack creates a pack with the given title.
func (s *ContentService) CreatePack(ctx context.Context, title string) (*entities.Pack, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: pack title must not be empty", entities.ErrValidation)
	}

	pack := entities.NewPack(title)
	if err := s.packs.Create(ctx, pack); err != nil {
		return nil, err
	}

	return pack, nil
}

// GetPack retrieves a pack by ID.
func (s *ContentService) GetPack(ctx context.Context, id string) (*entities.Pack, error) {
	return s.packs.GetByID(ctx, id)
}

// GetAllPacks lists every pack in creation order.
func (s *ContentService) GetAllPacks(ctx context.Context) ([]*entities.Pack, error) {
	return s.packs.GetAll(ctx)
}

// CreateQuestion creates a question inside an existing pack.
func (s *ContentService) CreateQuestion(ctx context.Context, packID, text, imageURL string) (*entities.Question, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: question text must not be empty", entities.ErrValidation)
	}

	if _, err := s.packs.GetByID(ctx, packID); err != nil {
		return nil, err
	}

	question := entities.NewQuestion(packID, text, imageURL)
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}

// GetQuestion retrieves a question by ID.
func (s *ContentService) GetQuestion(ctx context.Context, id string) (*entities.Question, error) {
	return s.questions.GetByID(ctx, id)
}

// GetQuestionsByPack lists a pack's questions in creation order, which is
// the order the quiz asks them in. An unknown pack yields an empty list.
func (s *ContentService) GetQuestionsByPack(ctx context.Context, packID string) ([]*entities.Question, error) {
	return s.questions.GetByPackID(ctx, packID)
}

// CreateVariant creates an answer variant for an existing question.
func (s *ContentService) CreateVariant(ctx context.Context, questionID, text string, isCorrect bool) (*entities.Variant, error) {
	if _, err := s.questions.GetByID(ctx, questionID); err != nil {
		return nil, err
	}

	variant := entities.NewVariant(questionID, text, isCorrect)
	if err := s.variants.Create(ctx, variant); err != nil {
		return nil, err
	}

	return variant, nil
}

// GetVariant retrieves a variant by ID.
func (s *ContentService) GetVariant(ctx context.Context, id string) (*entities.Variant, error) {
	return s.variants.GetByID(ctx, id)
}

// GetVariantsByQuestion lists a question's variants in creation order.
// An unknown question yields an empty list.
func (s *ContentService) GetVariantsByQuestion(ctx context.Context, questionID string) ([]*entities.Variant, error) {
	return s.variants.GetByQuestionID(ctx, questionID)
}
