package event

import (
	"context"

	"go.uber.org/zap"
)

// LoggingObserver writes a structured log line for every game event.
type LoggingObserver struct {
	logger *zap.Logger
}

func NewLoggingObserver(logger *zap.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

func (o *LoggingObserver) Handle(_ context.Context, e Event) {
	switch ev := e.(type) {
	case SessionCreated:
		o.logger.Info("game session created",
			zap.String("session_id", ev.SessionID),
			zap.String("pack_id", ev.PackID),
		)
	case PlayerJoined:
		o.logger.Info("player joined",
			zap.String("session_id", ev.SessionID),
			zap.String("player_id", ev.PlayerID),
			zap.String("player_name", ev.PlayerName),
		)
	case GameStarted:
		o.logger.Info("game started",
			zap.String("session_id", ev.SessionID),
			zap.Int("players", ev.PlayerCount),
			zap.Int("questions", ev.QuestionCount),
		)
	case AnswerSubmitted:
		o.logger.Info("answer submitted",
			zap.String("session_id", ev.SessionID),
			zap.String("player_name", ev.PlayerName),
			zap.String("question_id", ev.QuestionID),
			zap.Bool("is_correct", ev.IsCorrect),
		)
	case ScoreUpdated:
		o.logger.Info("score updated",
			zap.String("session_id", ev.SessionID),
			zap.String("player_name", ev.PlayerName),
			zap.Int("old_score", ev.OldScore),
			zap.Int("new_score", ev.NewScore),
		)
	case AllPlayersAnswered:
		o.logger.Info("all players answered",
			zap.String("session_id", ev.SessionID),
			zap.Int("question_index", ev.QuestionIndex),
			zap.Int("players", ev.PlayerCount),
		)
	case QuestionAdvanced:
		o.logger.Info("question advanced",
			zap.String("session_id", ev.SessionID),
			zap.Int("old_index", ev.OldIndex),
			zap.Int("new_index", ev.NewIndex),
		)
	case GameFinished:
		o.logger.Info("game finished",
			zap.String("session_id", ev.SessionID),
			zap.Int("questions", ev.QuestionCount),
			zap.Int("players", ev.PlayerCount),
		)
	default:
		o.logger.Info("game event", zap.String("event", e.Name()))
	}
}
