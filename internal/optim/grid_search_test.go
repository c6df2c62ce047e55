package optim

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/san-kum/gravitylab/internal/metrics"
	"github.com/san-kum/gravitylab/internal/params"
	"github.com/san-kum/gravitylab/internal/scene"
	"github.com/san-kum/gravitylab/internal/sim"
)

func headless(ctx context.Context, p params.Parameters) (*sim.Result, error) {
	r := sim.New(params.NewStore(p), scene.NewRenderer(nil), scene.Discard{W: 1280, H: 720})
	for _, m := range metrics.Defaults() {
		r.AddMetric(m)
	}
	return r.Run(ctx, sim.Config{Frames: 30})
}

func TestGrid_ExpandsAndClamps(t *testing.T) {
	g := NewGridSearch(
		[]params.Key{params.KeyVelocity, params.KeyDistance},
		[][]float64{{0.5, 1.0, 9}, {200, 300}},
	)
	cells := g.Grid(params.Defaults())
	if len(cells) != 6 {
		t.Fatalf("cells = %d, want 6", len(cells))
	}
	if cells[4].Velocity != params.MaxVelocity || cells[4].Distance != 200 {
		t.Errorf("cell 4 = %+v", cells[4])
	}
}

func TestEvaluate_FindsStableVelocity(t *testing.T) {
	g := NewGridSearch([]params.Key{params.KeyVelocity}, [][]float64{Linspace(0.5, 1.5, 5)})
	points, err := g.Evaluate(context.Background(), params.Defaults(), headless)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(points) != 5 {
		t.Fatalf("points = %d", len(points))
	}

	best, v, ok := Best(points, "stable_fraction", true)
	if !ok || v != 1 {
		t.Fatalf("best = %v (%v)", v, ok)
	}
	if best.Params.Velocity != 1.0 {
		t.Errorf("best velocity = %v, want 1.0", best.Params.Velocity)
	}
}

func TestEvaluate_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	g := NewGridSearch([]params.Key{params.KeyMoonMass}, [][]float64{{0.05, 0.1}})
	_, err := g.Evaluate(context.Background(), params.Defaults(), func(context.Context, params.Parameters) (*sim.Result, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}

	if _, err := NewGridSearch(nil, nil).Evaluate(context.Background(), params.Defaults(), headless); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("empty grid err = %v", err)
	}
}

func TestEvaluate_FailureCancelsSiblings(t *testing.T) {
	g := NewGridSearch([]params.Key{params.KeyVelocity}, [][]float64{Linspace(0.5, 1.5, 5)})
	boom := errors.New("boom")
	var cancelled atomic.Int32

	run := func(ctx context.Context, p params.Parameters) (*sim.Result, error) {
		if p.Velocity == 0.5 {
			return nil, boom
		}
		select {
		case <-ctx.Done():
			cancelled.Add(1)
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
			return nil, errors.New("sibling was not cancelled")
		}
	}

	_, err := g.Evaluate(context.Background(), params.Defaults(), run)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if n := cancelled.Load(); n != 4 {
		t.Errorf("cancelled siblings = %d, want 4", n)
	}
}
