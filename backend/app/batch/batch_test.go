package batch

import (
	"context"
	"errors"
	"testing"
)

func TestRunContinuesPastFailures(t *testing.T) {
	var started []string
	inFlight := 0
	tally := Run(context.Background(), []string{"P1", "P2", "P3"}, 0, func(_ context.Context, item string) error {
		inFlight++
		if inFlight > 1 {
			t.Fatalf("step %s started while another was in flight", item)
		}
		started = append(started, item)
		inFlight--
		if item == "P2" {
			return errors.New("toggle rejected")
		}
		return nil
	})
	if len(started) != 3 {
		t.Fatalf("started %v, want all three items", started)
	}
	if started[0] != "P1" || started[1] != "P2" || started[2] != "P3" {
		t.Fatalf("issuance order %v, want [P1 P2 P3]", started)
	}
	if tally.Succeeded != 2 || tally.Failed != 1 {
		t.Fatalf("tally = %d/%d, want 2 succeeded 1 failed", tally.Succeeded, tally.Failed)
	}
	if tally.Errors["P2"] == "" {
		t.Fatal("P2 failure text missing from tally")
	}
}

func TestRunStopsOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var ran []string
	tally := Run(ctx, []string{"A", "B", "C"}, 0, func(_ context.Context, item string) error {
		ran = append(ran, item)
		if item == "A" {
			cancel()
		}
		return nil
	})
	if len(ran) != 1 {
		t.Fatalf("ran %v, want cancellation to stop after A", ran)
	}
	if tally.Succeeded != 1 || tally.Failed != 2 {
		t.Fatalf("tally = %d/%d, want 1 succeeded and 2 marked failed", tally.Succeeded, tally.Failed)
	}
}

func TestRunEmpty(t *testing.T) {
	tally := Run(context.Background(), nil, 0, func(context.Context, string) error {
		t.Fatal("step called for empty batch")
		return nil
	})
	if tally.Succeeded != 0 || tally.Failed != 0 {
		t.Fatalf("tally = %+v, want zero", tally)
	}
}
