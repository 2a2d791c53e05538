package service

import (
	"context"
	"fmt"

	"github.com/quizroom/quizroom/internal/domain/entities"
	"github.com/quizroom/quizroom/internal/event"
)

// memStore is an in-memory stand-in for the postgres repositories. It
// hands out copies on reads and applies mutations on Update, mirroring
// how scanned rows behave.
type memStore struct {
	packs     []*entities.Pack
	questions []*entities.Question
	variants  []*entities.Variant
	sessions  []*entities.GameSession
	players   []*entities.Player
	answers   []*entities.Answer
	nextID    int
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) id(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s-%d", prefix, m.nextID)
}

func (m *memStore) repos() Repos {
	return Repos{
		Packs:     &fakePackRepo{m},
		Questions: &fakeQuestionRepo{m},
		Variants:  &fakeVariantRepo{m},
		Sessions:  &fakeSessionRepo{m},
		Players:   &fakePlayerRepo{m},
		Answers:   &fakeAnswerRepo{m},
	}
}

// WithinTx satisfies Transactor. The fake has no rollback; tests only
// exercise logic, not storage atomicity.
func (m *memStore) WithinTx(_ context.Context, fn func(ctx context.Context, r Repos) error) error {
	return fn(context.Background(), m.repos())
}

type fakePackRepo struct{ m *memStore }

func (r *fakePackRepo) Create(_ context.Context, pack *entities.Pack) error {
	pack.ID = r.m.id("pack")
	cp := *pack
	r.m.packs = append(r.m.packs, &cp)
	return nil
}

func (r *fakePackRepo) GetByID(_ context.Context, id string) (*entities.Pack, error) {
	for _, p := range r.m.packs {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, entities.ErrPackNotFound
}

func (r *fakePackRepo) GetAll(_ context.Context) ([]*entities.Pack, error) {
	out := make([]*entities.Pack, 0, len(r.m.packs))
	for _, p := range r.m.packs {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type fakeQuestionRepo struct{ m *memStore }

func (r *fakeQuestionRepo) Create(_ context.Context, q *entities.Question) error {
	q.ID = r.m.id("question")
	cp := *q
	r.m.questions = append(r.m.questions, &cp)
	return nil
}

func (r *fakeQuestionRepo) GetByID(_ context.Context, id string) (*entities.Question, error) {
	for _, q := range r.m.questions {
		if q.ID == id {
			cp := *q
			return &cp, nil
		}
	}
	return nil, entities.ErrQuestionNotFound
}

func (r *fakeQuestionRepo) GetByPackID(_ context.Context, packID string) ([]*entities.Question, error) {
	var out []*entities.Question
	for _, q := range r.m.questions {
		if q.PackID == packID {
			cp := *q
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) GetByPackIDAndOrder(ctx context.Context, packID string, index int) (*entities.Question, error) {
	qs, _ := r.GetByPackID(ctx, packID)
	if index < 0 || index >= len(qs) {
		return nil, entities.ErrQuestionNotFound
	}
	return qs[index], nil
}

func (r *fakeQuestionRepo) CountByPackID(ctx context.Context, packID string) (int, error) {
	qs, _ := r.GetByPackID(ctx, packID)
	return len(qs), nil
}

type fakeVariantRepo struct{ m *memStore }

func (r *fakeVariantRepo) Create(_ context.Context, v *entities.Variant) error {
	v.ID = r.m.id("variant")
	cp := *v
	r.m.variants = append(r.m.variants, &cp)
	return nil
}

func (r *fakeVariantRepo) GetByID(_ context.Context, id string) (*entities.Variant, error) {
	for _, v := range r.m.variants {
		if v.ID == id {
			cp := *v
			return &cp, nil
		}
	}
	return nil, entities.ErrVariantNotFound
}

func (r *fakeVariantRepo) GetByQuestionID(_ context.Context, questionID string) ([]*entities.Variant, error) {
	var out []*entities.Variant
	for _, v := range r.m.variants {
		if v.QuestionID == questionID {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeSessionRepo struct{ m *memStore }

func (r *fakeSessionRepo) Create(_ context.Context, gs *entities.GameSession) error {
	gs.ID = r.m.id("session")
	cp := *gs
	r.m.sessions = append(r.m.sessions, &cp)
	return nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id string) (*entities.GameSession, error) {
	for _, gs := range r.m.sessions {
		if gs.ID == id {
			cp := *gs
			return &cp, nil
		}
	}
	return nil, entities.ErrSessionNotFound
}

func (r *fakeSessionRepo) GetByIDForUpdate(ctx context.Context, id string) (*entities.GameSession, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeSessionRepo) GetAll(_ context.Context) ([]*entities.GameSession, error) {
	out := make([]*entities.GameSession, 0, len(r.m.sessions))
	for _, gs := range r.m.sessions {
		cp := *gs
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSessionRepo) Update(_ context.Context, gs *entities.GameSession) error {
	for i, stored := range r.m.sessions {
		if stored.ID == gs.ID {
			cp := *gs
			r.m.sessions[i] = &cp
			return nil
		}
	}
	return entities.ErrSessionNotFound
}

type fakePlayerRepo struct{ m *memStore }

func (r *fakePlayerRepo) Create(_ context.Context, p *entities.Player) error {
	p.ID = r.m.id("player")
	cp := *p
	r.m.players = append(r.m.players, &cp)
	return nil
}

func (r *fakePlayerRepo) GetByID(_ context.Context, id string) (*entities.Player, error) {
	for _, p := range r.m.players {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, entities.ErrPlayerNotFound
}

func (r *fakePlayerRepo) GetByGameSessionID(_ context.Context, gameSessionID string) ([]*entities.Player, error) {
	var out []*entities.Player
	for _, p := range r.m.players {
		if p.GameSessionID == gameSessionID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePlayerRepo) IncrementScore(_ context.Context, playerID string, points int) (int, error) {
	for _, p := range r.m.players {
		if p.ID == playerID {
			p.Score += points
			return p.Score, nil
		}
	}
	return 0, entities.ErrPlayerNotFound
}

type fakeAnswerRepo struct{ m *memStore }

func (r *fakeAnswerRepo) Create(_ context.Context, a *entities.Answer) error {
	for _, stored := range r.m.answers {
		if stored.PlayerID == a.PlayerID && stored.QuestionID == a.QuestionID {
			return entities.ErrAnswerAlreadySubmitted
		}
	}
	a.ID = r.m.id("answer")
	cp := *a
	r.m.answers = append(r.m.answers, &cp)
	return nil
}

func (r *fakeAnswerRepo) Exists(_ context.Context, playerID, questionID string) (bool, error) {
	for _, a := range r.m.answers {
		if a.PlayerID == playerID && a.QuestionID == questionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAnswerRepo) GetByPlayerID(_ context.Context, playerID string) ([]*entities.Answer, error) {
	var out []*entities.Answer
	for _, a := range r.m.answers {
		if a.PlayerID == playerID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeAnswerRepo) CountForQuestion(_ context.Context, gameSessionID, questionID string) (int, error) {
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

// testEngine wires every service over one shared memStore, the way the
// binaries wire them over one pool.
type testEngine struct {
	store     *memStore
	captured  *captureObserver
	content   *ContentService
	sessions  *SessionService
	players   *PlayerService
	sequencer *SequencerService
	judge     *JudgeService
	results   *ResultsService
}

func newTestEngine() *testEngine {
	store := newMemStore()
	captured := &captureObserver{}
	events := event.NewManager(captured)
	r := store.repos()

	return &testEngine{
		store:     store,
		captured:  captured,
		content:   NewContentService(r.Packs, r.Questions, r.Variants),
		sessions:  NewSessionService(r.Sessions, r.Packs, r.Questions, r.Players, store, events),
		players:   NewPlayerService(r.Players, store, events),
		sequencer: NewSequencerService(r.Sessions, r.Questions, r.Variants, r.Players, store, events),
		judge:     NewJudgeService(r.Players, r.Answers, store, events),
		results:   NewResultsService(r.Sessions, r.Players),
	}
}

// captureObserver records delivered events for assertions.
type captureObserver struct {
	events []event.Event
}

func (o *captureObserver) Handle(_ context.Context, e event.Event) {
	o.events = append(o.events, e)
}

func (o *captureObserver) names() []string {
	out := make([]string, 0, len(o.events))
	for _, e := range o.events {
		out = append(out, e.Name())
	}
	return out
}
