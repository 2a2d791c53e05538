package entities

import "time"

// Variant is one candidate answer to a question. A question may have any
// number of variants; the ones flagged correct score points.
type Variant struct {
	ID         string    // unique variant ID
	QuestionID string    // question the variant belongs to
	Text       string    // variant text
	IsCorrect  bool      // whether choosing this variant scores points
	CreatedAt  time.Time // timestamp when the variant was created
}

// NewVariant creates a variant for the given question.
func NewVariant(questionID, text string, isCorrect bool) *Variant {
	return &Variant{
		QuestionID: questionID,
		Text:       text,
		IsCorrect:  isCorrect,
		CreatedAt:  time.Now(),
	}
}
