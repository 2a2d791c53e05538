package entities

import "time"

// Pack is a named collection of questions. Questions keep the order in
// which they were created; that order is the order the quiz asks them in.
type Pack struct {
	ID        string    // unique pack ID
	Title     string    // pack title shown to players
	CreatedAt time.Time // timestamp when the pack was created
}

// NewPack creates a pack with the given title.
func NewPack(title string) *Pack {
	return &Pack{
		Title:     title,
		CreatedAt: time.Now(),
	}
}
