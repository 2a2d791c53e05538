package httpapi

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quizroom/quizroom/internal/domain/entities"
	"github.com/quizroom/quizroom/internal/event"
	"github.com/quizroom/quizroom/internal/service"
)

// memStore is an in-memory stand-in for the postgres store, just enough
// to drive the handlers end to end.
type memStore struct {
	packs     []*entities.Pack
	questions []*entities.Question
	variants  []*entities.Variant
	sessions  []*entities.GameSession
	players   []*entities.Player
	answers   []*entities.Answer
}

func (m *memStore) repos() service.Repos {
	return service.Repos{
		Packs:     &memPackRepo{m},
		Questions: &memQuestionRepo{m},
		Variants:  &memVariantRepo{m},
		Sessions:  &memSessionRepo{m},
		Players:   &memPlayerRepo{m},
		Answers:   &memAnswerRepo{m},
	}
}

func (m *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context, r service.Repos) error) error {
	return fn(ctx, m.repos())
}

type memPackRepo struct{ m *memStore }

func (r *memPackRepo) Create(_ context.Context, p *entities.Pack) error {
	p.ID = uuid.NewString()
	r.m.packs = append(r.m.packs, p)
	return nil
}

func (r *memPackRepo) GetByID(_ context.Context, id string) (*entities.Pack, error) {
	for _, p := range r.m.packs {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("pack %s: %w", id, entities.ErrPackNotFound)
}

func (r *memPackRepo) GetAll(_ context.Context) ([]*entities.Pack, error) {
	return r.m.packs, nil
}

type memQuestionRepo struct{ m *memStore }

func (r *memQuestionRepo) Create(_ context.Context, q *entities.Question) error {
	q.ID = uuid.NewString()
	r.m.questions = append(r.m.questions, q)
	return nil
}

func (r *memQuestionRepo) GetByID(_ context.Context, id string) (*entities.Question, error) {
	for _, q := range r.m.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, fmt.Errorf("question %s: %w", id, entities.ErrQuestionNotFound)
}

func (r *memQuestionRepo) GetByPackID(_ context.Context, packID string) ([]*entities.Question, error) {
	var out []*entities.Question
	for _, q := range r.m.questions {
		if q.PackID == packID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *memQuestionRepo) GetByPackIDAndOrder(ctx context.Context, packID string, index int) (*entities.Question, error) {
	qs, _ := r.GetByPackID(ctx, packID)
	if index < 0 || index >= len(qs) {
		return nil, fmt.Errorf("pack %s index %d: %w", packID, index, entities.ErrQuestionNotFound)
	}
	return qs[index], nil
}

func (r *memQuestionRepo) CountByPackID(ctx context.Context, packID string) (int, error) {
	qs, _ := r.GetByPackID(ctx, packID)
	return len(qs), nil
}

type memVariantRepo struct{ m *memStore }

func (r *memVariantRepo) Create(_ context.Context, v *entities.Variant) error {
	v.ID = uuid.NewString()
	r.m.variants = append(r.m.variants, v)
	return nil
}

func (r *memVariantRepo) GetByID(_ context.Context, id string) (*entities.Variant, error) {
	for _, v := range r.m.variants {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, fmt.Errorf("variant %s: %w", id, entities.ErrVariantNotFound)
}

func (r *memVariantRepo) GetByQuestionID(_ context.Context, questionID string) ([]*entities.Variant, error) {
	var out []*entities.Variant
	for _, v := range r.m.variants {
		if v.QuestionID == questionID {
			out = append(out, v)
		}
	}
	return out, nil
}

type memSessionRepo struct{ m *memStore }

func (r *memSessionRepo) Create(_ context.Context, gs *entities.GameSession) error {
	gs.ID = uuid.NewString()
	r.m.sessions = append(r.m.sessions, gs)
	return nil
}

func (r *memSessionRepo) GetByID(_ context.Context, id string) (*entities.GameSession, error) {
	for _, gs := range r.m.sessions {
		if gs.ID == id {
			cp := *gs
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("game session %s: %w", id, entities.ErrSessionNotFound)
}

func (r *memSessionRepo) GetByIDForUpdate(ctx context.Context, id string) (*entities.GameSession, error) {
	return r.GetByID(ctx, id)
}

func (r *memSessionRepo) GetAll(_ context.Context) ([]*entities.GameSession, error) {
	return r.m.sessions, nil
}

func (r *memSessionRepo) Update(_ context.Context, gs *entities.GameSession) error {
	for i, got := range r.m.sessions {
		if got.ID == gs.ID {
			cp := *gs
			r.m.sessions[i] = &cp
			return nil
		}
	}
	return fmt.Errorf("game session %s: %w", gs.ID, entities.ErrSessionNotFound)
}

type memPlayerRepo struct{ m *memStore }

func (r *memPlayerRepo) Create(_ context.Context, p *entities.Player) error {
	p.ID = uuid.NewString()
	r.m.players = append(r.m.players, p)
	return nil
}

func (r *memPlayerRepo) GetByID(_ context.Context, id string) (*entities.Player, error) {
	for _, p := range r.m.players {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("player %s: %w", id, entities.ErrPlayerNotFound)
}

func (r *memPlayerRepo) GetByGameSessionID(_ context.Context, gameSessionID string) ([]*entities.Player, error) {
	var out []*entities.Player
	for _, p := range r.m.players {
		if p.GameSessionID == gameSessionID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPlayerRepo) IncrementScore(ctx context.Context, playerID string, points int) (int, error) {
	p, err := r.GetByID(ctx, playerID)
	if err != nil {
		return 0, err
	}
	p.Score += points
	return p.Score, nil
}

type memAnswerRepo struct{ m *memStore }

func (r *memAnswerRepo) Create(_ context.Context, a *entities.Answer) error {
	for _, got := range r.m.answers {
		if got.PlayerID == a.PlayerID && got.QuestionID == a.QuestionID {
			return entities.ErrAnswerAlreadySubmitted
		}
	}
	a.ID = uuid.NewString()
	r.m.answers = append(r.m.answers, a)
	return nil
}

func (r *memAnswerRepo) Exists(_ context.Context, playerID, questionID string) (bool, error) {
	for _, a := range r.m.answers {
		if a.PlayerID == playerID && a.QuestionID == questionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memAnswerRepo) GetByPlayerID(_ context.Context, playerID string) ([]*entities.Answer, error) {
	var out []*entities.Answer
	for _, a := range r.m.answers {
		if a.PlayerID == playerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAnswerRepo) CountForQuestion(_ context.Context, gameSessionID, questionID string) (int, error) {
	inSession := map[string]bool{}
	for _, p := range r.m.players {
		if p.GameSessionID == gameSessionID {
			inSession[p.ID] = true
		}
	}

	count := 0
	for _, a := range r.m.answers {
		if a.QuestionID == questionID && inSession[a.PlayerID] {
			count++
		}
	}
	return count, nil
}

// newTestHandler wires a full handler over an in-memory store.
func newTestHandler() *Handler {
	store := &memStore{}
	r := store.repos()
	events := event.NewManager()
	log := zap.NewNop()

	return NewHandler(
		service.NewContentService(r.Packs, r.Questions, r.Variants),
		service.NewSessionService(r.Sessions, r.Packs, r.Questions, r.Players, store, events),
		service.NewPlayerService(r.Players, store, events),
		service.NewSequencerService(r.Sessions, r.Questions, r.Variants, r.Players, store, events),
		service.NewJudgeService(r.Players, r.Answers, store, events),
		service.NewResultsService(r.Sessions, r.Players),
		log,
	)
}
