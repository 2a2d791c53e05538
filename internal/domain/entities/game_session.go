package entities

import (
	"errors"
	"time"
)

// SessionState is the lifecycle state of a game session.
type SessionState string

const (
	StateWaiting  SessionState = "waiting"  // created, players may join, not started yet
	StateActive   SessionState = "active"   // game in progress
	StateFinished SessionState = "finished" // game over, results are final
)

// Lifecycle errors: the InvalidState side of the taxonomy in errors.go.
var (
	ErrSessionNotWaiting      = errors.New("game session is not waiting")
	ErrSessionAlreadyFinished = errors.New("game session is already finished")
	ErrSessionNotActive       = errors.New("game session is not active")
)

// GameSession is one play-through of a pack by a set of players.
// It tracks the owning pack, lifecycle state, the current question cursor,
// and transition timestamps.
type GameSession struct {
	ID                   string       // unique session ID
	PackID               string       // pack this session plays
	State                SessionState // waiting, active, or finished
	CurrentQuestionIndex int          // zero-based cursor into the pack's question order
	CreatedAt            time.Time    // timestamp when the session was created
	StartedAt            *time.Time   // set once the session starts (nullable)
	FinishedAt           *time.Time   // set once the session finishes (nullable)
}

// NewGameSession creates a waiting session bound to the given pack.
func NewGameSession(packID string) *GameSession {
	return &GameSession{
		PackID:    packID,
		State:     StateWaiting,
		CreatedAt: time.Now(),
	}
}

// Start moves the session from waiting to active. Each session starts at
// most once; starting from any other state is rejected.
func (gs *GameSession) Start() error {
	if gs.State != StateWaiting {
		return ErrSessionNotWaiting
	}

	gs.State = StateActive
	now := time.Now()
	gs.StartedAt = &now

	return nil
}

// Finish moves the session to its terminal state. Finishing an already
// finished session is rejected so the transition fires exactly once.
func (gs *GameSession) Finish() error {
	if gs.State == StateFinished {
		return ErrSessionAlreadyFinished
	}

	gs.State = StateFinished
	now := time.Now()
	gs.FinishedAt = &now

	return nil
}

// IsActive reports whether the session accepts answers.
func (gs *GameSession) IsActive() bool {
	return gs.State == StateActive
}

// AcceptsPlayers reports whether new players may still join.
func (gs *GameSession) AcceptsPlayers() bool {
	return gs.State != StateFinished
}

// AdvanceQuestion moves the cursor to the next question. The cursor only
// moves while the session is active and never runs past questionCount;
// advancing off the end finishes the session and reports no more questions.
func (gs *GameSession) AdvanceQuestion(questionCount int) (hasMore bool, err error) {
	if gs.State != StateActive {
		return false, ErrSessionNotActive
	}

	gs.CurrentQuestionIndex++
	if gs.CurrentQuestionIndex >= questionCount {
		gs.CurrentQuestionIndex = questionCount
		if err := gs.Finish(); err != nil {
			return false, err
		}
		return false, nil
	}

	return true, nil
}

// OnLastQuestion reports whether the cursor sits on the final question.
func (gs *GameSession) OnLastQuestion(questionCount int) bool {
	return questionCount > 0 && gs.CurrentQuestionIndex == questionCount-1
}
