package event

import (
	"context"
	"sync"
)

// Stats is a snapshot of the counters kept by StatsObserver.
type Stats struct {
	SessionsCreated  int `json:"sessions_created"`
	GamesStarted     int `json:"games_started"`
	GamesFinished    int `json:"games_finished"`
	PlayersJoined    int `json:"players_joined"`
	AnswersSubmitted int `json:"answers_submitted"`
	CorrectAnswers   int `json:"correct_answers"`
}

// StatsObserver keeps in-process counters of game activity.
type StatsObserver struct {
	mu    sync.Mutex
	stats Stats
}

func NewStatsObserver() *StatsObserver {
	return &StatsObserver{}
}

func (o *StatsObserver) Handle(_ context.Context, e Event) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch ev := e.(type) {
	case SessionCreated:
		o.stats.SessionsCreated++
	case GameStarted:
		o.stats.GamesStarted++
	case GameFinished:
		o.stats.GamesFinished++
	case PlayerJoined:
		o.stats.PlayersJoined++
	case AnswerSubmitted:
		o.stats.AnswersSubmitted++
		if ev.IsCorrect {
			o.stats.CorrectAnswers++
		}
	}
}

// Snapshot returns a copy of the current counters.
func (o *StatsObserver) Snapshot() Stats {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.stats
}
