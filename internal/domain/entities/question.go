package entities

import "time"

// Question is a single prompt inside a pack. ImageURL is empty when the
// question has no picture attached.
type Question struct {
	ID        string    // unique question ID
	PackID    string    // pack the question belongs to
	Text      string    // question text
	ImageURL  string    // optional picture URL
	CreatedAt time.Time // timestamp when the question was created
}

// NewQuestion creates a question inside the given pack.
func NewQuestion(packID, text, imageURL string) *Question {
	return &Question{
		PackID:    packID,
		Text:      text,
		ImageURL:  imageURL,
		CreatedAt: time.Now(),
	}
}
