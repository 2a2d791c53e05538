package entities

import "time"

// Player is a participant enrolled in one game session. Score starts at
// zero and only grows when the judge credits a correct answer.
type Player struct {
	ID            string    // unique player ID
	GameSessionID string    // session the player joined
	Name          string    // display name
	Score         int       // accumulated points
	JoinedAt      time.Time // timestamp when the player joined
}

// NewPlayer creates a player for the given session with a zero score.
func NewPlayer(gameSessionID, name string) *Player {
	return &Player{
		GameSessionID: gameSessionID,
		Name:          name,
		JoinedAt:      time.Now(),
	}
}
