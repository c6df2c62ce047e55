package params

// Update is a partial Parameters record. Nil fields are left untouched by
// Merge.
type Update struct {
	EarthMass   *float64 `yaml:"earth_mass,omitempty" json:"earth_mass,omitempty"`
	MoonMass    *float64 `yaml:"moon_mass,omitempty" json:"moon_mass,omitempty"`
	Distance    *float64 `yaml:"distance,omitempty" json:"distance,omitempty"`
	Velocity    *float64 `yaml:"velocity,omitempty" json:"velocity,omitempty"`
	ShowVectors *bool    `yaml:"show_vectors,omitempty" json:"show_vectors,omitempty"`
	ShowField   *bool    `yaml:"show_field,omitempty" json:"show_field,omitempty"`
	ShowPath    *bool    `yaml:"show_path,omitempty" json:"show_path,omitempty"`
	AutoOrbit   *bool    `yaml:"auto_orbit,omitempty" json:"auto_orbit,omitempty"`
}

func Float(v float64) *float64 { return &v }
func Bool(v bool) *bool        { return &v }

// Empty reports whether u sets no field.
func (u Update) Empty() bool {
	return u.EarthMass == nil && u.MoonMass == nil && u.Distance == nil && u.Velocity == nil &&
		u.ShowVectors == nil && u.ShowField == nil && u.ShowPath == nil && u.AutoOrbit == nil
}

// Key identifies one tunable numeric parameter.
type Key int

const (
	KeyEarthMass Key = iota
	KeyMoonMass
	KeyDistance
	KeyVelocity
)

// Keys lists the tunable parameters in display order.
var Keys = []Key{KeyEarthMass, KeyMoonMass, KeyDistance, KeyVelocity}

func (k Key) String() string {
	switch k {
	case KeyEarthMass:
		return "earth"
	case KeyMoonMass:
		return "moon"
	case KeyDistance:
		return "distance"
	case KeyVelocity:
		return "velocity"
	}
	return "unknown"
}

// Range returns the slider bounds and nudge step for k.
func (k Key) Range() (lo, hi, step float64) {
	switch k {
	case KeyEarthMass:
		return MinEarthMass, MaxEarthMass, 0.1
	case KeyMoonMass:
		return MinMoonMass, MaxMoonMass, 0.001
	case KeyDistance:
		return MinDistance, MaxDistance, 5
	case KeyVelocity:
		return MinVelocity, MaxVelocity, 0.01
	}
	return 0, 0, 0
}

// Value reads k out of p.
func (k Key) Value(p Parameters) float64 {
	switch k {
	case KeyEarthMass:
		return p.EarthMass
	case KeyMoonMass:
		return p.MoonMass
	case KeyDistance:
		return p.Distance
	case KeyVelocity:
		return p.Velocity
	}
	return 0
}

// Set builds an Update writing v to k.
func (k Key) Set(v float64) Update {
	switch k {
	case KeyEarthMass:
		return Update{EarthMass: &v}
	case KeyMoonMass:
		return Update{MoonMass: &v}
	case KeyDistance:
		return Update{Distance: &v}
	case KeyVelocity:
		return Update{Velocity: &v}
	}
	return Update{}
}

// Nudge moves k by steps slider increments, staying inside the slider range.
// A distance beyond the slider range (set by a drag) is pulled back into it.
func (k Key) Nudge(p Parameters, steps int) Update {
	lo, hi, step := k.Range()
	v := k.Value(p) + float64(steps)*step
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return k.Set(v)
}
