package entities

import "time"

// Answer is an immutable record of one player's submitted variant for one
// question. At most one answer per (player, question) pair is ever counted.
type Answer struct {
	ID         string    // unique answer ID
	PlayerID   string    // player who answered
	QuestionID string    // question that was answered
	VariantID  string    // variant the player picked
	IsCorrect  bool      // whether the picked variant was correct
	AnsweredAt time.Time // timestamp when the answer was submitted
}

// NewAnswer records a player's pick for a question.
func NewAnswer(playerID, questionID, variantID string, isCorrect bool) *Answer {
	return &Answer{
		PlayerID:   playerID,
		QuestionID: questionID,
		VariantID:  variantID,
		IsCorrect:  isCorrect,
		AnsweredAt: time.Now(),
	}
}
