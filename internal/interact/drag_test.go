package interact

import (
	"testing"

	"github.com/san-kum/gravitylab/internal/params"
)

func TestDrag_IgnoredWhileAutoOrbit(t *testing.T) {
	calls := 0
	d := NewDrag(func(float64) { calls++ })

	if d.PointerDown(true, 400) {
		t.Error("pointer down should be ignored during auto-orbit")
	}
	if _, ok := d.PointerMove(900); ok {
		t.Error("move without drag should report false")
	}
	if calls != 0 || d.State() != Idle {
		t.Errorf("state=%v calls=%d", d.State(), calls)
	}
}

func TestDrag_Lifecycle(t *testing.T) {
	var got []float64
	d := NewDrag(func(v float64) { got = append(got, v) })

	if !d.PointerDown(false, 400) {
		t.Fatal("drag should start")
	}
	if d.State() != Dragging {
		t.Fatalf("state = %v", d.State())
	}

	d.PointerMove(700)
	d.PointerMove(100)
	d.PointerUp()
	d.PointerMove(650)

	if len(got) != 2 || got[0] != 300 || got[1] != 300 {
		t.Errorf("distances = %v, want [300 300]", got)
	}
	if d.State() != Idle {
		t.Errorf("state after up = %v", d.State())
	}
}

func TestDistance_Clamped(t *testing.T) {
	tests := []struct {
		cursor, earth float64
		want          float64
	}{
		{410, 400, params.MinDistance},
		{400, 400, params.MinDistance},
		{-5000, 400, params.DragMaxDistance},
		{5000, 400, params.DragMaxDistance},
		{650, 400, 250},
		{150, 400, 250},
	}
	for _, tt := range tests {
		if got := Distance(tt.cursor, tt.earth); got != tt.want {
			t.Errorf("Distance(%v, %v) = %v, want %v", tt.cursor, tt.earth, got, tt.want)
		}
	}
}

func TestDrag_FeedsStore(t *testing.T) {
	s := params.NewStore(params.Defaults())
	s.Merge(params.Update{AutoOrbit: params.Bool(false)})
	d := NewDrag(s.SetDistance)

	d.PointerDown(s.Snapshot().AutoOrbit, 300)
	d.PointerMove(1200)
	if got := s.Snapshot().Distance; got != params.DragMaxDistance {
		t.Errorf("store distance = %v, want %v", got, params.DragMaxDistance)
	}
	d.Cancel()
	if d.State() != Idle {
		t.Error("cancel should return to idle")
	}
}
