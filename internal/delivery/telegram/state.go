package telegram

import "sync"

// chatGame tracks the running game of one chat: which session it plays,
// which question is on screen, which Telegram user maps to which
// player, and who already answered so the bot knows when to advance.
type chatGame struct {
	sessionID  string
	questionID string           // question currently shown in the chat
	players    map[int64]string // telegram user ID -> player ID
	answered   map[int64]bool   // telegram user IDs done with the current question
}

func (g *chatGame) resetAnswered() {
	g.answered = make(map[int64]bool)
}

// gameRegistry holds per-chat game state. Updates arrive on one
// goroutine, but callbacks may be handled while a command runs, so
// access stays locked.
type gameRegistry struct {
	mu    sync.Mutex
	games map[int64]*chatGame
}

func newGameRegistry() *gameRegistry {
	return &gameRegistry{games: make(map[int64]*chatGame)}
}

func (r *gameRegistry) get(chatID int64) (*chatGame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[chatID]
	return g, ok
}

func (r *gameRegistry) put(chatID int64, g *chatGame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[chatID] = g
}

func (r *gameRegistry) delete(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, chatID)
}
