package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/gravitylab/internal/sim"
)

type ExportData struct {
	TraceMetadata
	Samples []sim.Sample `json:"samples"`
}

// ExportJSON writes a trace with its samples as indented JSON.
func (s *Store) ExportJSON(w io.Writer, traceID string) error {
	meta, err := s.Load(traceID)
	if err != nil {
		return err
	}
	samples, err := s.LoadSamples(traceID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{TraceMetadata: *meta, Samples: samples})
}
