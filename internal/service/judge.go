package service

import (
	"context"
	"fmt"

	"github.com/quizroom/quizroom/internal/domain/entities"
	"github.com/quizroom/quizroom/internal/event"
)

// PointsPerCorrectAnswer is the fixed credit for a correct answer.
const PointsPerCorrectAnswer = 10

// SubmitResult is what a player learns back from an answer submission.
type SubmitResult struct {
	IsCorrect    bool
	Points       int
	GameFinished bool
}

// JudgeService validates and scores submitted answers. Submission never
// moves the question cursor; advancing is the sequencer's job. The one
// exception is the end of the game: when every player has answered the
// last question, the session finishes as part of the submission.
type JudgeService struct {
	players PlayerRepository
	answers AnswerRepository
	tr      Transactor
	events  *event.Manager
}

func NewJudgeService(
	players PlayerRepository,
	answers AnswerRepository,
	tr Transactor,
	events *event.Manager,
) *JudgeService {
	return &JudgeService{
		players: players,
		answers: answers,
		tr:      tr,
		events:  events,
	}
}

// Submit records and scores one answer. The answer row, the score
// credit and a possible session finish commit together or not at all.
func (s *JudgeService) Submit(ctx context.Context, playerID, questionID, variantID string) (*SubmitResult, error) {
	var (
		result SubmitResult
		emits  []event.Event
	)

	err := s.tr.WithinTx(ctx, func(ctx context.Context, r Repos) error {
		player, err := r.Players.GetByID(ctx, playerID)
		if err != nil {
			return err
		}

		// Lock the session row: the auto-finish below must not race
		// concurrent submissions or advances.
		gs, err := r.Sessions.GetByIDForUpdate(ctx, player.GameSessionID)
		if err != nil {
			return err
		}
		if !gs.IsActive() {
			return entities.ErrSessionNotActive
		}

		variant, err := r.Variants.GetByID(ctx, variantID)
		if err != nil {
			return err
		}
		if variant.QuestionID != questionID {
			return fmt.Errorf("%w: variant does not belong to the stated question", entities.ErrVariantNotFound)
		}

		question, err := r.Questions.GetByID(ctx, questionID)
		if err != nil {
			return err
		}
		if question.PackID != gs.PackID {
			return fmt.Errorf("%w: question is not part of the session's pack", entities.ErrQuestionNotFound)
		}

		taken, err := r.Answers.Exists(ctx, playerID, questionID)
		if err != nil {
			return err
		}
		if taken {
			return entities.ErrAnswerAlreadySubmitted
		}

		result.IsCorrect = variant.IsCorrect
		if variant.IsCorrect {
			result.Points = PointsPerCorrectAnswer

			newScore, err := r.Players.IncrementScore(ctx, playerID, PointsPerCorrectAnswer)
			if err != nil {
				return err
			}

			emits = append(emits, event.ScoreUpdated{
				SessionID:  gs.ID,
				PlayerID:   player.ID,
				PlayerName: player.Name,
				OldScore:   player.Score,
				NewScore:   newScore,
			})
		}

		answer := entities.NewAnswer(playerID, questionID, variantID, variant.IsCorrect)
		if err := r.Answers.Create(ctx, answer); err != nil {
			return err
		}

		emits = append(emits, event.AnswerSubmitted{
			SessionID:  gs.ID,
			PlayerID:   player.ID,
			PlayerName: player.Name,
			QuestionID: questionID,
			VariantID:  variantID,
			IsCorrect:  variant.IsCorrect,
		})

		finished, evs, err := s.maybeFinish(ctx, r, gs, questionID)
		if err != nil {
			return err
		}
		result.GameFinished = finished
		emits = append(emits, evs...)

		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, e := range emits {
		s.events.Notify(ctx, e)
	}

	return &result, nil
}

// maybeFinish ends the session once every enrolled player has answered
// the last question. The caller holds the session row lock.
func (s *JudgeService) maybeFinish(ctx context.Context, r Repos, gs *entities.GameSession, questionID string) (bool, []event.Event, error) {
	total, err := r.Questions.CountByPackID(ctx, gs.PackID)
	if err != nil {
		return false, nil, err
	}

	if !gs.OnLastQuestion(total) {
		return false, nil, nil
	}

	current, err := r.Questions.GetByPackIDAndOrder(ctx, gs.PackID, gs.CurrentQuestionIndex)
	if err != nil {
		return false, nil, err
	}
	if current.ID != questionID {
		return false, nil, nil
	}

	players, err := r.Players.GetByGameSessionID(ctx, gs.ID)
	if err != nil {
		return false, nil, err
	}
	answered, err := r.Answers.CountForQuestion(ctx, gs.ID, questionID)
	if err != nil {
		return false, nil, err
	}
	if answered < len(players) {
		return false, nil, nil
	}

	evs := []event.Event{event.AllPlayersAnswered{
		SessionID:     gs.ID,
		QuestionID:    questionID,
		QuestionIndex: gs.CurrentQuestionIndex,
		PlayerCount:   len(players),
	}}

	if err := gs.Finish(); err != nil {
		return false, nil, err
	}
	if err := r.Sessions.Update(ctx, gs); err != nil {
		return false, nil, err
	}

	evs = append(evs, event.GameFinished{
		SessionID:     gs.ID,
		QuestionCount: total,
		PlayerCount:   len(players),
	})

	return true, evs, nil
}

// PlayerAnswers retrieves a player's recorded answers in submission order.
func (s *JudgeService) PlayerAnswers(ctx context.Context, playerID string) ([]*entities.Answer, error) {
	if _, err := s.players.GetByID(ctx, playerID); err != nil {
		return nil, err
	}

	return s.answers.GetByPlayerID(ctx, playerID)
}
