package service

import (
	"context"

	"github.com/quizroom/quizroom/internal/domain/entities"
	"github.com/quizroom/quizroom/internal/event"
)

// SessionService owns the game session lifecycle. Transitions run under
// a per-session row lock so each one fires exactly once.
type SessionService struct {
	sessions  GameSessionRepository
	packs     PackRepository
	questions QuestionRepository
	players   PlayerRepository
	tr        Transactor
	events    *event.Manager
}

func NewSessionService(
	sessions GameSessionRepository,
	packs PackRepository,
	questions QuestionRepository,
	players PlayerRepository,
	tr Transactor,
	events *event.Manager,
) *SessionService {
	return &SessionService{
		sessions:  sessions,
		packs:     packs,
		questions: questions,
		players:   players,
		tr:        tr,
		events:    events,
	}
}

// Create opens a waiting session bound to an existing pack.
func (s *SessionService) Create(ctx context.Context, packID string) (*entities.GameSession, error) {
	if _, err := s.packs.GetByID(ctx, packID); err != nil {
		return nil, err
	}

	session := entities.NewGameSession(packID)
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	s.events.Notify(ctx, event.SessionCreated{SessionID: session.ID, PackID: packID})

	return session, nil
}

// Get retrieves a session by ID.
func (s *SessionService) Get(ctx context.Context, id string) (*entities.GameSession, error) {
	return s.sessions.GetByID(ctx, id)
}

// List retrieves every session, newest first.
func (s *SessionService) List(ctx context.Context) ([]*entities.GameSession, error) {
	return s.sessions.GetAll(ctx)
}

// Start moves a waiting session to active.
func (s *SessionService) Start(ctx context.Context, id string) (*entities.GameSession, error) {
	var (
		session       *entities.GameSession
		playerCount   int
		questionCount int
	)

	err := s.tr.WithinTx(ctx, func(ctx context.Context, r Repos) error {
		gs, err := r.Sessions.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := gs.Start(); err != nil {
			return err
		}

		if err := r.Sessions.Update(ctx, gs); err != nil {
			return err
		}

		players, err := r.Players.GetByGameSessionID(ctx, gs.ID)
		if err != nil {
			return err
		}
		questionCount, err = r.Questions.CountByPackID(ctx, gs.PackID)
		if err != nil {
			return err
		}

		session = gs
		playerCount = len(players)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Notify(ctx, event.GameStarted{
		SessionID:     session.ID,
		PlayerCount:   playerCount,
		QuestionCount: questionCount,
	})

	return session, nil
}

// End moves a session to finished. A second end call is an error: the
// transition happens once.
func (s *SessionService) End(ctx context.Context, id string) (*entities.GameSession, error) {
	var (
		session       *entities.GameSession
		playerCount   int
		questionCount int
	)

	err := s.tr.WithinTx(ctx, func(ctx context.Context, r Repos) error {
		gs, err := r.Sessions.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := gs.Finish(); err != nil {
			return err
		}

		if err := r.Sessions.Update(ctx, gs); err != nil {
			return err
		}

		players, err := r.Players.GetByGameSessionID(ctx, gs.ID)
		if err != nil {
			return err
		}
		questionCount, err = r.Questions.CountByPackID(ctx, gs.PackID)
		if err != nil {
			return err
		}

		session = gs
		playerCount = len(players)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Notify(ctx, event.GameFinished{
		SessionID:     session.ID,
		QuestionCount: questionCount,
		PlayerCount:   playerCount,
	})

	return session, nil
}

// GameState is a one-call snapshot of a session for polling clients.
type GameState struct {
	Session        *entities.GameSession
	Players        []*entities.Player
	TotalQuestions int
}

// GetState returns the session together with its players and the size
// of its pack.
func (s *SessionService) GetState(ctx context.Context, id string) (*GameState, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	players, err := s.players.GetByGameSessionID(ctx, id)
	if err != nil {
		return nil, err
	}

	total, err := s.questions.CountByPackID(ctx, session.PackID)
	if err != nil {
		return nil, err
	}

	return &GameState{
		Session:        session,
		Players:        players,
		TotalQuestions: total,
	}, nil
}
