package scene

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestDashes(t *testing.T) {
	line := []Point{{X: 0, Y: 0}, {X: 30, Y: 0}}

	if got := Dashes(line, nil); len(got) != 1 || len(got[0]) != 2 {
		t.Fatalf("solid = %v", got)
	}

	runs := Dashes(line, []float64{2, 10})
	if len(runs) != 3 {
		t.Fatalf("runs = %d, want 3: %v", len(runs), runs)
	}
	for i, want := range []float64{0, 12, 24} {
		r := runs[i]
		if !near(r[0].X, want) || !near(r[len(r)-1].X, want+2) {
			t.Errorf("run %d = %v, want [%v, %v]", i, r, want, want+2)
		}
	}
}

func TestDashes_CarryAcrossVertices(t *testing.T) {
	path := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 3}}
	runs := Dashes(path, []float64{2, 10})
	if len(runs) != 1 || len(runs[0]) != 3 {
		t.Fatalf("runs = %v", runs)
	}
	end := runs[0][2]
	if !near(end.X, 1) || !near(end.Y, 1) {
		t.Errorf("dash should bend round the corner and end at (1,1), got %+v", end)
	}
}
