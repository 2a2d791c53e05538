package service

import (
	"context"

	"github.com/quizroom/quizroom/internal/domain/entities"
	"github.com/quizroom/quizroom/internal/event"
)

// CurrentQuestion is the active question of a session together with its
// answer variants in creation order.
type CurrentQuestion struct {
	Question *entities.Question
	Variants []*entities.Variant
	Index    int
	Total    int
}

// SequencerService owns the session's question cursor.
type SequencerService struct {
	sessions  GameSessionRepository
	questions QuestionRepository
	variants  VariantRepository
	players   PlayerRepository
	tr        Transactor
	events    *event.Manager
}

func NewSequencerService(
	sessions GameSessionRepository,
	questions QuestionRepository,
	variants VariantRepository,
	players PlayerRepository,
	tr Transactor,
	events *event.Manager,
) *SequencerService {
	return &SequencerService{
		sessions:  sessions,
		questions: questions,
		variants:  variants,
		players:   players,
		tr:        tr,
		events:    events,
	}
}

// Current resolves the question at the session's cursor. A cursor past
// the last question reports entities.ErrQuestionsExhausted, which
// callers treat as the end-of-content signal rather than a failure.
func (s *SequencerService) Current(ctx context.Context, gameSessionID string) (*CurrentQuestion, error) {
	// One row read gives a consistent (state, cursor) pair.
	gs, err := s.sessions.GetByID(ctx, gameSessionID)
	if err != nil {
		return nil, err
	}

	total, err := s.questions.CountByPackID(ctx, gs.PackID)
	if err != nil {
		return nil, err
	}

	if total == 0 || gs.CurrentQuestionIndex >= total {
		return nil, entities.ErrQuestionsExhausted
	}

	question, err := s.questions.GetByPackIDAndOrder(ctx, gs.PackID, gs.CurrentQuestionIndex)
	if err != nil {
		return nil, err
	}

	variants, err := s.variants.GetByQuestionID(ctx, question.ID)
	if err != nil {
		return nil, err
	}

	return &CurrentQuestion{
		Question: question,
		Variants: variants,
		Index:    gs.CurrentQuestionIndex,
		Total:    total,
	}, nil
}

// Advance moves the session's cursor to the next question and reports
// whether one exists. Advancing past the last question finishes the
// session. The session row lock makes concurrent advances safe: the
// cursor never moves past the bound and the finish fires once.
func (s *SequencerService) Advance(ctx context.Context, gameSessionID string) (bool, error) {
	var (
		hasMore     bool
		oldIndex    int
		session     *entities.GameSession
		total       int
		playerCount int
	)

	err := s.tr.WithinTx(ctx, func(ctx context.Context, r Repos) error {
		gs, err := r.Sessions.GetByIDForUpdate(ctx, gameSessionID)
		if err != nil {
			return err
		}

		total, err = r.Questions.CountByPackID(ctx, gs.PackID)
		if err != nil {
			return err
		}

		oldIndex = gs.CurrentQuestionIndex
		hasMore, err = gs.AdvanceQuestion(total)
		if err != nil {
			return err
		}

		if err := r.Sessions.Update(ctx, gs); err != nil {
			return err
		}

		if !hasMore {
			players, err := r.Players.GetByGameSessionID(ctx, gs.ID)
			if err != nil {
				return err
			}
			playerCount = len(players)
		}

		session = gs
		return nil
	})
	if err != nil {
		return false, err
	}

	if hasMore {
		s.events.Notify(ctx, event.QuestionAdvanced{
			SessionID: session.ID,
			OldIndex:  oldIndex,
			NewIndex:  session.CurrentQuestionIndex,
		})
	} else {
		s.events.Notify(ctx, event.GameFinished{
			SessionID:     session.ID,
			QuestionCount: total,
			PlayerCount:   playerCount,
		})
	}

	return hasMore, nil
}
