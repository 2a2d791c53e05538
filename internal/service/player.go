package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/quizroom/quizroom/internal/domain/entities"
	"github.com/quizroom/quizroom/internal/event"
)

// PlayerService owns player enrollment. Scores are written only by the
// judge; there is no public score mutation.
type PlayerService struct {
	players PlayerRepository
	tr      Transactor
	events  *event.Manager
}

func NewPlayerService(players PlayerRepository, tr Transactor, events *event.Manager) *PlayerService {
	return &PlayerService{
		players: players,
		tr:      tr,
		events:  events,
	}
}

// Add enrolls a player in a session that has not finished yet. The
// session row is locked so joining cannot race a concurrent finish.
func (s *PlayerService) Add(ctx context.Context, gameSessionID, name string) (*entities.Player, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: player name must not be empty", entities.ErrValidation)
	}

	var player *entities.Player

	err := s.tr.WithinTx(ctx, func(ctx context.Context, r Repos) error {
		gs, err := r.Sessions.GetByIDForUpdate(ctx, gameSessionID)
		if err != nil {
			return err
		}

		if !gs.AcceptsPlayers() {
			return entities.ErrSessionAlreadyFinished
		}

		p := entities.NewPlayer(gameSessionID, name)
		if err := r.Players.Create(ctx, p); err != nil {
			return err
		}

		player = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Notify(ctx, event.PlayerJoined{
		SessionID:  gameSessionID,
		PlayerID:   player.ID,
		PlayerName: player.Name,
	})

	return player, nil
}

// List retrieves a session's players in join order. An unknown session
// yields an empty list.
func (s *PlayerService) List(ctx context.Context, gameSessionID string) ([]*entities.Player, error) {
	return s.players.GetByGameSessionID(ctx, gameSessionID)
}
