package storage

import (
	"strconv"

	"github.com/san-kum/gravitylab/internal/physics"
	"github.com/san-kum/gravitylab/internal/sim"
)

func encodeSample(s sim.Sample) []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	return []string{
		strconv.Itoa(s.Frame), f(s.Time), f(s.Angle),
		f(s.EarthX), f(s.EarthY), f(s.MoonX), f(s.MoonY),
		f(s.Distance), f(s.Velocity), strconv.FormatBool(s.AutoOrbit),
		strconv.Itoa(s.TrailLen), f(s.Force), f(s.Stability),
		s.Status.String(), f(s.ArrowLength),
	}
}

func decodeSample(record []string) (sim.Sample, bool) {
	if len(record) != len(sampleHeader) {
		return sim.Sample{}, false
	}
	var s sim.Sample
	var err error
	floats := []*float64{
		&s.Time, &s.Angle, &s.EarthX, &s.EarthY, &s.MoonX, &s.MoonY, &s.Distance, &s.Velocity,
	}
	if s.Frame, err = strconv.Atoi(record[0]); err != nil {
		return s, false
	}
	for i, dst := range floats {
		if *dst, err = strconv.ParseFloat(record[i+1], 64); err != nil {
			return s, false
		}
	}
	if s.AutoOrbit, err = strconv.ParseBool(record[9]); err != nil {
		return s, false
	}
	if s.TrailLen, err = strconv.Atoi(record[10]); err != nil {
		return s, false
	}
	if s.Force, err = strconv.ParseFloat(record[11], 64); err != nil {
		return s, false
	}
	if s.Stability, err = strconv.ParseFloat(record[12], 64); err != nil {
		return s, false
	}
	s.Status = parseStatus(record[13])
	if s.ArrowLength, err = strconv.ParseFloat(record[14], 64); err != nil {
		return s, false
	}
	return s, true
}

func parseStatus(v string) physics.Status {
	switch v {
	case physics.Stable.String():
		return physics.Stable
	case physics.Escaping.String():
		return physics.Escaping
	default:
		return physics.Decaying
	}
}
