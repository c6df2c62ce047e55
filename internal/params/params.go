package params

import "math"

// Ranges enforced by Clamp. The slider range for distance stops at 500; a
// drag may push it out to DragMaxDistance.
const (
	MinEarthMass = 1.0
	MaxEarthMass = 15.0
	MinMoonMass  = 0.01
	MaxMoonMass  = 0.3
	MinDistance  = 120.0
	MaxDistance  = 500.0
	MinVelocity  = 0.1
	MaxVelocity  = 3.0

	DragMaxDistance = 580.0
)

const (
	DefaultEarthMass = 5.97
	DefaultMoonMass  = 0.073
	DefaultDistance  = 350.0
	DefaultVelocity  = 1.0
)

// Parameters is the shared simulation record. Distance drives the scene only
// while AutoOrbit is false; Velocity only while it is true.
type Parameters struct {
	EarthMass   float64 `yaml:"earth_mass" json:"earth_mass"`
	MoonMass    float64 `yaml:"moon_mass" json:"moon_mass"`
	Distance    float64 `yaml:"distance" json:"distance"`
	Velocity    float64 `yaml:"velocity" json:"velocity"`
	ShowVectors bool    `yaml:"show_vectors" json:"show_vectors"`
	ShowField   bool    `yaml:"show_field" json:"show_field"`
	ShowPath    bool    `yaml:"show_path" json:"show_path"`
	AutoOrbit   bool    `yaml:"auto_orbit" json:"auto_orbit"`
}

func Defaults() Parameters {
	return Parameters{
		EarthMass:   DefaultEarthMass,
		MoonMass:    DefaultMoonMass,
		Distance:    DefaultDistance,
		Velocity:    DefaultVelocity,
		ShowVectors: true,
		ShowField:   true,
		ShowPath:    true,
		AutoOrbit:   true,
	}
}

// Clamp pins every numeric field to its valid range. NaN falls back to the
// default for that field.
func (p Parameters) Clamp() Parameters {
	p.EarthMass = clamp(p.EarthMass, MinEarthMass, MaxEarthMass, DefaultEarthMass)
	p.MoonMass = clamp(p.MoonMass, MinMoonMass, MaxMoonMass, DefaultMoonMass)
	p.Distance = clamp(p.Distance, MinDistance, DragMaxDistance, DefaultDistance)
	p.Velocity = clamp(p.Velocity, MinVelocity, MaxVelocity, DefaultVelocity)
	return p
}

// Merge applies every set field of u and returns the clamped result.
func (p Parameters) Merge(u Update) Parameters {
	if u.EarthMass != nil {
		p.EarthMass = *u.EarthMass
	}
	if u.MoonMass != nil {
		p.MoonMass = *u.MoonMass
	}
	if u.Distance != nil {
		p.Distance = *u.Distance
	}
	if u.Velocity != nil {
		p.Velocity = *u.Velocity
	}
	if u.ShowVectors != nil {
		p.ShowVectors = *u.ShowVectors
	}
	if u.ShowField != nil {
		p.ShowField = *u.ShowField
	}
	if u.ShowPath != nil {
		p.ShowPath = *u.ShowPath
	}
	if u.AutoOrbit != nil {
		p.AutoOrbit = *u.AutoOrbit
	}
	return p.Clamp()
}

func clamp(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return math.Max(lo, math.Min(hi, v))
}
