package service

import (
	"context"
	"errors"
	"testing"

	"github.com/quizroom/quizroom/internal/domain/entities"
)

func TestResultsSortedByScore(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	gs, questions := seedGame(t, e, "first?", "second?")
	alice, _ := e.players.Add(ctx, gs.ID, "Alice")
	bob, _ := e.players.Add(ctx, gs.ID, "Bob")

	right := correctVariant(t, e, questions[0].ID)
	wrong := wrongVariant(t, e, questions[0].ID)
	_, _ = e.judge.Submit(ctx, alice.ID, questions[0].ID, wrong.ID)
	_, _ = e.judge.Submit(ctx, bob.ID, questions[0].ID, right.ID)

	results, err := e.results.Get(ctx, gs.ID)
	if err != nil {
		t.Fatalf("get results: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 players, got %d", len(results))
	}
	if results[0].Name != "Bob" || results[0].Score != PointsPerCorrectAnswer {
		t.Errorf("expected Bob with %d points first, got %q with %d", PointsPerCorrectAnswer, results[0].Name, results[0].Score)
	}
	if results[1].Name != "Alice" || results[1].Score != 0 {
		t.Errorf("expected Alice with 0 points last, got %q with %d", results[1].Name, results[1].Score)
	}
}

func TestResultsTiesKeepJoinOrder(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	pack, _ := e.content.CreatePack(ctx, "General")
	gs, _ := e.sessions.Create(ctx, pack.ID)
	_, _ = e.players.Add(ctx, gs.ID, "Alice")
	_, _ = e.players.Add(ctx, gs.ID, "Bob")
	_, _ = e.players.Add(ctx, gs.ID, "Carol")

	results, err := e.results.Get(ctx, gs.ID)
	if err != nil {
		t.Fatalf("get results: %v", err)
	}
	names := make([]string, 0, len(results))
	for _, p := range results {
		names = append(names, p.Name)
	}
	want := []string{"Alice", "Bob", "Carol"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected join order %v, got %v", want, names)
		}
	}
}

func TestResultsUnknownSession(t *testing.T) {
	e := newTestEngine()

	if _, err := e.results.Get(context.Background(), "missing"); !errors.Is(err, entities.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

// A full two-question playthrough: answers, advance, auto-finish, results.
func TestFullGamePlaythrough(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	gs, questions := seedGame(t, e, "first?", "second?")
	alice, _ := e.players.Add(ctx, gs.ID, "Alice")
	bob, _ := e.players.Add(ctx, gs.ID, "Bob")

	// Question one: both answer, Alice correctly.
	_, _ = e.judge.Submit(ctx, alice.ID, questions[0].ID, correctVariant(t, e, questions[0].ID).ID)
	_, _ = e.judge.Submit(ctx, bob.ID, questions[0].ID, wrongVariant(t, e, questions[0].ID).ID)

	hasMore, err := e.sequencer.Advance(ctx, gs.ID)
	if err != nil || !hasMore {
		t.Fatalf("advance: hasMore=%v err=%v", hasMore, err)
	}

	// Question two: both correct. Bob answers last and ends the game.
	_, _ = e.judge.Submit(ctx, alice.ID, questions[1].ID, correctVariant(t, e, questions[1].ID).ID)
	res, err := e.judge.Submit(ctx, bob.ID, questions[1].ID, correctVariant(t, e, questions[1].ID).ID)
	if err != nil {
		t.Fatalf("final submit: %v", err)
	}
	if !res.GameFinished {
		t.Fatal("expected the final submission to finish the game")
	}

	results, err := e.results.Get(ctx, gs.ID)
	if err != nil {
		t.Fatalf("get results: %v", err)
	}
	if results[0].Name != "Alice" || results[0].Score != 2*PointsPerCorrectAnswer {
		t.Errorf("expected Alice leading with %d, got %q with %d", 2*PointsPerCorrectAnswer, results[0].Name, results[0].Score)
	}
	if results[1].Name != "Bob" || results[1].Score != PointsPerCorrectAnswer {
		t.Errorf("expected Bob with %d, got %q with %d", PointsPerCorrectAnswer, results[1].Name, results[1].Score)
	}
}
