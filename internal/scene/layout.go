package scene

// Tier buckets the surface width. Wider tiers spread the bodies further
// and draw them larger.
type Tier int

const (
	Narrow Tier = iota
	Medium
	Wide
)

func (t Tier) String() string {
	switch t {
	case Wide:
		return "wide"
	case Medium:
		return "medium"
	default:
		return "narrow"
	}
}

func TierFor(width float64) Tier {
	switch {
	case width > 1200:
		return Wide
	case width > 800:
		return Medium
	default:
		return Narrow
	}
}

// EarthX is earth's horizontal screen position. The offset from centre
// scales with distance; wider tiers use the smaller divisor.
func EarthX(width, distance float64) float64 {
	cx := width / 2
	switch TierFor(width) {
	case Wide:
		return cx - distance/5
	case Medium:
		return cx - distance/8
	default:
		return cx
	}
}

func GridSpacing(width float64) float64 {
	if TierFor(width) == Narrow {
		return 35
	}
	return 50
}

func EarthRadius(width, earthMass float64) float64 {
	base := 38.0
	if TierFor(width) != Narrow {
		base = 50
	}
	return base + earthMass*1.3
}

func MoonRadius(width, moonMass float64) float64 {
	base := 9.0
	if TierFor(width) != Narrow {
		base = 12
	}
	return base + moonMass*35
}
