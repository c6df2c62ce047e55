package scene

import "math"

// Dashes splits a polyline into the visible runs of an on/off dash
// pattern. An empty pattern returns the path as one run.
func Dashes(pts []Point, dash []float64) [][]Point {
	if len(pts) < 2 {
		return nil
	}
	period := 0.0
	for _, d := range dash {
		period += d
	}
	if period <= 0 {
		return [][]Point{pts}
	}

	var (
		runs [][]Point
		cur  []Point
		idx  int
		left = dash[0]
	)
	on := true
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for pos < seg {
			step := math.Min(left, seg-pos)
			if on {
				start := lerp(a, b, pos/seg)
				if len(cur) == 0 {
					cur = append(cur, start)
				}
				cur = append(cur, lerp(a, b, (pos+step)/seg))
			}
			pos += step
			left -= step
			if left <= 0 {
				if on && len(cur) > 1 {
					runs = append(runs, cur)
				}
				cur = nil
				idx = (idx + 1) % len(dash)
				left = dash[idx]
				on = idx%2 == 0
			}
		}
	}
	if on && len(cur) > 1 {
		runs = append(runs, cur)
	}
	return runs
}

func lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
