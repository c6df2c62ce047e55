package sim

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/san-kum/gravitylab/internal/params"
	"github.com/san-kum/gravitylab/internal/physics"
	"github.com/san-kum/gravitylab/internal/scene"
)

// Runner drives a renderer frame by frame without a display. It is the
// headless counterpart of the terminal and window loops.
type Runner struct {
	store     *params.Store
	renderer  *scene.Renderer
	surface   scene.Surface
	metrics   []Metric
	observers []Observer
}

func New(store *params.Store, renderer *scene.Renderer, surface scene.Surface) *Runner {
	return &Runner{
		store:     store,
		renderer:  renderer,
		surface:   surface,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run renders cfg.Frames frames. On cancellation it returns the frames
// rendered so far together with the context error.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Frames <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoFrames, cfg.Frames)
	}

	events := append([]Event(nil), cfg.Events...)
	sort.SliceStable(events, func(i, j int) bool { return events[i].Frame < events[j].Frame })

	for _, m := range r.metrics {
		m.Reset()
	}

	var tick <-chan time.Time
	if cfg.Interval > 0 {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	result := &Result{
		Samples: make([]Sample, 0, cfg.Frames),
		Metrics: make(map[string]float64),
	}
	next := 0
	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return r.finish(result), ctx.Err()
		default:
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return r.finish(result), ctx.Err()
			case <-tick:
			}
		}

		for next < len(events) && events[next].Frame <= i {
			r.store.Merge(events[next].Update)
			next++
		}

		p := r.store.Snapshot()
		f := r.renderer.Render(r.surface, p)
		if !f.Drawn {
			continue
		}
		tel := physics.Compute(p)
		s := Sample{
			Frame:       i,
			Time:        r.renderer.Elapsed(),
			Angle:       f.Angle,
			EarthX:      f.EarthX,
			EarthY:      f.EarthY,
			MoonX:       f.MoonX,
			MoonY:       f.MoonY,
			Distance:    p.Distance,
			Velocity:    p.Velocity,
			AutoOrbit:   p.AutoOrbit,
			TrailLen:    f.TrailLen,
			Force:       tel.Force,
			Stability:   tel.Stability,
			Status:      tel.Status,
			ArrowLength: f.ActionLength,
		}
		for _, m := range r.metrics {
			m.Observe(s)
		}
		for _, o := range r.observers {
			o.OnFrame(s)
		}
		result.Samples = append(result.Samples, s)
	}
	return r.finish(result), nil
}

func (r *Runner) finish(result *Result) *Result {
	result.Final = r.store.Snapshot()
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result
}
