package service

import (
	"context"
	"sort"

	"github.com/quizroom/quizroom/internal/domain/entities"
)

// ResultsService computes the leaderboard of a session.
type ResultsService struct {
	sessions GameSessionRepository
	players  PlayerRepository
}

func NewResultsService(sessions GameSessionRepository, players PlayerRepository) *ResultsService {
	return &ResultsService{
		sessions: sessions,
		players:  players,
	}
}

// Get returns the session's players sorted by score, highest first.
// Ties keep join order. Valid in any session state, though the scores
// are only final once the session has finished.
func (s *ResultsService) Get(ctx context.Context, gameSessionID string) ([]*entities.Player, error) {
	if _, err := s.sessions.GetByID(ctx, gameSessionID); err != nil {
		return nil, err
	}

	players, err := s.players.GetByGameSessionID(ctx, gameSessionID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Score > players[j].Score
	})

	return players, nil
}
