package sim

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/san-kum/gravitylab/internal/params"
	"github.com/san-kum/gravitylab/internal/physics"
	"github.com/san-kum/gravitylab/internal/scene"
	"github.com/san-kum/gravitylab/internal/trail"
)

func newRunner(p params.Parameters) (*Runner, *params.Store) {
	store := params.NewStore(p)
	r := scene.NewRenderer(scene.NewStarField(10, rand.New(rand.NewSource(1))))
	return New(store, r, scene.Discard{W: 1280, H: 720}), store
}

func TestRunnerRun(t *testing.T) {
	runner, _ := newRunner(params.Defaults())
	frames := 0
	runner.AddObserver(ObserverFunc(func(Sample) { frames++ }))

	result, err := runner.Run(context.Background(), Config{Frames: 300})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(result.Samples) != 300 || frames != 300 {
		t.Errorf("expected 300 samples, got %d (observer saw %d)", len(result.Samples), frames)
	}

	last := result.Samples[len(result.Samples)-1]
	if last.TrailLen != trail.Capacity {
		t.Errorf("trail len = %d, want %d", last.TrailLen, trail.Capacity)
	}
	if last.Status != physics.Stable || last.Stability != 100 {
		t.Errorf("unexpected telemetry: %+v", last)
	}
	if last.Time <= result.Samples[0].Time {
		t.Error("time should advance")
	}
}

func TestRunnerEvents_ManualClearsTrail(t *testing.T) {
	runner, _ := newRunner(params.Defaults())
	cfg := Config{
		Frames: 200,
		Events: []Event{
			{Frame: 150, Update: params.Update{Distance: params.Float(200)}},
			{Frame: 100, Update: params.Update{AutoOrbit: params.Bool(false)}},
		},
	}

	result, err := runner.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	before, at := result.Samples[99], result.Samples[100]
	if before.TrailLen != 100 || !before.AutoOrbit {
		t.Errorf("before toggle: %+v", before)
	}
	if at.TrailLen != 0 || at.AutoOrbit {
		t.Errorf("after toggle trail should be empty: %+v", at)
	}
	if at.Angle != before.Angle || result.Samples[199].Angle != before.Angle {
		t.Error("angle advanced while manual")
	}
	if result.Samples[150].Distance != 200 || result.Final.Distance != 200 {
		t.Errorf("distance event not applied: %v", result.Samples[150].Distance)
	}
}

func TestRunner_NoFrames(t *testing.T) {
	runner, _ := newRunner(params.Defaults())
	if _, err := runner.Run(context.Background(), Config{}); !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
}

func TestRunner_Canceled(t *testing.T) {
	runner, _ := newRunner(params.Defaults())
	ctx, cancel := context.WithCancel(context.Background())
	runner.AddObserver(ObserverFunc(func(s Sample) {
		if s.Frame == 9 {
			cancel()
		}
	}))

	result, err := runner.Run(ctx, Config{Frames: 100, Interval: time.Millisecond})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(result.Samples) != 10 {
		t.Errorf("expected 10 samples before cancel, got %d", len(result.Samples))
	}
}

type countMetric struct{ n int }

func (c *countMetric) Name() string   { return "count" }
func (c *countMetric) Observe(Sample) { c.n++ }
func (c *countMetric) Value() float64 { return float64(c.n) }
func (c *countMetric) Reset()         { c.n = 0 }

func TestRunner_Metrics(t *testing.T) {
	runner, _ := newRunner(params.Defaults())
	runner.AddMetric(&countMetric{})

	result, err := runner.Run(context.Background(), Config{Frames: 25})
	if err != nil {
		t.Fatal(err)
	}
	if result.Metrics["count"] != 25 {
		t.Errorf("count metric = %v, want 25", result.Metrics["count"])
	}
}
