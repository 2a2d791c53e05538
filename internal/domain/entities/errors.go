package entities

import "errors"

// Domain error taxonomy. Repositories and services return these
// sentinels (possibly wrapped) so delivery layers can map them to wire
// statuses with errors.Is.
var (
	// Referenced entity does not exist.
	ErrPackNotFound     = errors.New("pack not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrVariantNotFound  = errors.New("variant not found")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrSessionNotFound  = errors.New("game session not found")

	// Duplicate answer submission for the same (player, question) pair.
	ErrAnswerAlreadySubmitted = errors.New("answer already submitted for this question")

	// Malformed input, such as an empty title or name.
	ErrValidation = errors.New("validation failed")

	// The question cursor is past the pack's last question. Not a
	// failure: callers treat it as the end-of-content signal.
	ErrQuestionsExhausted = errors.New("no more questions")
)
