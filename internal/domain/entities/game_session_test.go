package entities

import (
	"errors"
	"testing"
)

func TestNewGameSessionStartsWaiting(t *testing.T) {
	gs := NewGameSession("pack-1")

	if gs.State != StateWaiting {
		t.Errorf("expected state %q, got %q", StateWaiting, gs.State)
	}
	if gs.CurrentQuestionIndex != 0 {
		t.Errorf("expected question index 0, got %d", gs.CurrentQuestionIndex)
	}
	if gs.StartedAt != nil || gs.FinishedAt != nil {
		t.Error("expected started_at and finished_at to be unset")
	}
}

func TestGameSessionStart(t *testing.T) {
	gs := NewGameSession("pack-1")

	if err := gs.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if gs.State != StateActive {
		t.Errorf("expected state %q, got %q", StateActive, gs.State)
	}
	if gs.StartedAt == nil {
		t.Error("expected started_at to be set")
	}

	// Second start must be rejected.
	if err := gs.Start(); !errors.Is(err, ErrSessionNotWaiting) {
		t.Errorf("expected ErrSessionNotWaiting, got %v", err)
	}
}

func TestGameSessionFinish(t *testing.T) {
	gs := NewGameSession("pack-1")
	if err := gs.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := gs.Finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if gs.State != StateFinished {
		t.Errorf("expected state %q, got %q", StateFinished, gs.State)
	}
	if gs.FinishedAt == nil {
		t.Error("expected finished_at to be set")
	}

	if err := gs.Finish(); !errors.Is(err, ErrSessionAlreadyFinished) {
		t.Errorf("expected ErrSessionAlreadyFinished, got %v", err)
	}
}

func TestGameSessionStartAfterFinish(t *testing.T) {
	gs := NewGameSession("pack-1")
	_ = gs.Start()
	_ = gs.Finish()

	if err := gs.Start(); !errors.Is(err, ErrSessionNotWaiting) {
		t.Errorf("expected ErrSessionNotWaiting, got %v", err)
	}
}

func TestAdvanceQuestion(t *testing.T) {
	gs := NewGameSession("pack-1")
	_ = gs.Start()

	hasMore, err := gs.AdvanceQuestion(3)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if !hasMore {
		t.Error("expected more questions after first advance of three")
	}
	if gs.CurrentQuestionIndex != 1 {
		t.Errorf("expected index 1, got %d", gs.CurrentQuestionIndex)
	}
}

func TestAdvancePastLastQuestionFinishes(t *testing.T) {
	gs := NewGameSession("pack-1")
	_ = gs.Start()

	hasMore, err := gs.AdvanceQuestion(1)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if hasMore {
		t.Error("expected no more questions")
	}
	if gs.State != StateFinished {
		t.Errorf("expected state %q, got %q", StateFinished, gs.State)
	}
	if gs.CurrentQuestionIndex != 1 {
		t.Errorf("index must not run past question count, got %d", gs.CurrentQuestionIndex)
	}
}

func TestAdvanceRequiresActiveSession(t *testing.T) {
	gs := NewGameSession("pack-1")

	if _, err := gs.AdvanceQuestion(3); !errors.Is(err, ErrSessionNotActive) {
		t.Errorf("expected ErrSessionNotActive, got %v", err)
	}
}

func TestOnLastQuestion(t *testing.T) {
	tests := []struct {
		name          string
		index         int
		questionCount int
		want          bool
	}{
		{"first of three", 0, 3, false},
		{"last of three", 2, 3, true},
		{"only question", 0, 1, true},
		{"empty pack", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameSession("pack-1")
			gs.CurrentQuestionIndex = tt.index

			if got := gs.OnLastQuestion(tt.questionCount); got != tt.want {
				t.Errorf("OnLastQuestion(%d) with index %d = %v, want %v",
					tt.questionCount, tt.index, got, tt.want)
			}
		})
	}
}
