package trail

import "testing"

func TestBuffer_AppendUnderCapacity(t *testing.T) {
	b := New(4)
	b.Append(Point{1, 1})
	b.Append(Point{2, 2})

	pts := b.Points()
	if len(pts) != 2 || pts[0].X != 1 || pts[1].X != 2 {
		t.Errorf("unexpected points: %v", pts)
	}
}

func TestBuffer_EvictsOldest(t *testing.T) {
	b := New(Capacity)
	for i := 0; i < Capacity+10; i++ {
		b.Append(Point{X: float64(i)})
	}

	if b.Len() != Capacity {
		t.Fatalf("len = %d, want %d", b.Len(), Capacity)
	}
	pts := b.Points()
	if pts[0].X != 10 {
		t.Errorf("oldest = %v, want 10", pts[0].X)
	}
	if pts[len(pts)-1].X != Capacity+9 {
		t.Errorf("newest = %v, want %d", pts[len(pts)-1].X, Capacity+9)
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].X != pts[i-1].X+1 {
			t.Fatalf("order broken at %d: %v then %v", i, pts[i-1].X, pts[i].X)
		}
	}
}

func TestBuffer_Clear(t *testing.T) {
	b := New(0)
	if b.Cap() != Capacity {
		t.Errorf("default cap = %d, want %d", b.Cap(), Capacity)
	}
	for i := 0; i < 300; i++ {
		b.Append(Point{X: float64(i)})
	}
	b.Clear()
	if b.Len() != 0 || len(b.Points()) != 0 {
		t.Errorf("clear left %d points", b.Len())
	}

	b.Append(Point{X: 7})
	if pts := b.Points(); len(pts) != 1 || pts[0].X != 7 {
		t.Errorf("append after clear: %v", pts)
	}
}
