package optim

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/san-kum/gravitylab/internal/params"
	"github.com/san-kum/gravitylab/internal/sim"
)

var ErrEmptyGrid = errors.New("optim: empty grid")

// Point is one evaluated grid cell.
type Point struct {
	Params  params.Parameters
	Metrics map[string]float64
}

// RunFunc runs one headless trace for p.
type RunFunc func(ctx context.Context, p params.Parameters) (*sim.Result, error)

type GridSearch struct {
	keys   []params.Key
	ranges [][]float64
}

func NewGridSearch(keys []params.Key, ranges [][]float64) *GridSearch {
	return &GridSearch{keys: keys, ranges: ranges}
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}

// Grid expands every combination of the ranges on top of base. Values are
// clamped, so cells that clamp to the same parameters repeat.
func (g *GridSearch) Grid(base params.Parameters) []params.Parameters {
	cells := []params.Parameters{base.Clamp()}
	for i, k := range g.keys {
		next := make([]params.Parameters, 0, len(cells)*len(g.ranges[i]))
		for _, c := range cells {
			for _, v := range g.ranges[i] {
				next = append(next, c.Merge(k.Set(v)))
			}
		}
		cells = next
	}
	return cells
}

// Evaluate runs every grid cell concurrently. The first run to fail cancels
// the context handed to the others, and its error is returned.
func (g *GridSearch) Evaluate(ctx context.Context, base params.Parameters, run RunFunc) ([]Point, error) {
	cells := g.Grid(base)
	if len(g.keys) == 0 || len(cells) == 0 {
		return nil, ErrEmptyGrid
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	points := make([]Point, len(cells))
	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for i, p := range cells {
		wg.Add(1)
		go func(idx int, p params.Parameters) {
			defer wg.Done()
			res, err := run(ctx, p)
			if err != nil {
				once.Do(func() {
					firstErr = err
					cancel()
				})
				return
			}
			points[idx] = Point{Params: p, Metrics: res.Metrics}
		}(i, p)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return points, nil
}

// Best returns the point with the highest (or lowest) value of metric.
func Best(points []Point, metric string, maximize bool) (Point, float64, bool) {
	best := math.Inf(1)
	if maximize {
		best = math.Inf(-1)
	}
	var bp Point
	found := false
	for _, p := range points {
		v, ok := p.Metrics[metric]
		if !ok {
			continue
		}
		if (maximize && v > best) || (!maximize && v < best) {
			best, bp, found = v, p, true
		}
	}
	return bp, best, found
}
