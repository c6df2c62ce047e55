package params

// Store owns the live Parameters for one front end. Merge is the only write
// path; readers take a Snapshot once per frame. A Store is not safe for
// concurrent use: every front end drives it from a single goroutine.
type Store struct {
	cur     Parameters
	version uint64
	onMerge []func(prev, next Parameters)
}

func NewStore(initial Parameters) *Store {
	return &Store{cur: initial.Clamp()}
}

func (s *Store) Snapshot() Parameters { return s.cur }

// Version increases every time a merge changes the stored value.
func (s *Store) Version() uint64 { return s.version }

// OnMerge registers fn to run after each merge that changes the value.
func (s *Store) OnMerge(fn func(prev, next Parameters)) {
	s.onMerge = append(s.onMerge, fn)
}

func (s *Store) Merge(u Update) Parameters {
	prev := s.cur
	next := prev.Merge(u)
	if next == prev {
		return next
	}
	s.cur = next
	s.version++
	for _, fn := range s.onMerge {
		fn(prev, next)
	}
	return next
}

// SetDistance is the distance-update callback handed to the drag handler.
func (s *Store) SetDistance(d float64) {
	s.Merge(Update{Distance: &d})
}

// Reset restores the physical values to their defaults. Display toggles
// and the auto-orbit flag are kept.
func (s *Store) Reset() Parameters {
	d := Defaults()
	return s.Merge(Update{
		EarthMass: &d.EarthMass,
		MoonMass:  &d.MoonMass,
		Distance:  &d.Distance,
		Velocity:  &d.Velocity,
	})
}
