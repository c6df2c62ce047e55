package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/gravitylab/internal/params"
	"github.com/san-kum/gravitylab/internal/sim"
)

var ErrTraceNotFound = errors.New("storage: trace not found")

var sampleHeader = []string{
	"frame", "time", "angle", "earth_x", "earth_y", "moon_x", "moon_y",
	"distance", "velocity", "auto_orbit", "trail_len", "force", "stability", "status", "arrow_len",
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type TraceMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Frames    int                `json:"frames"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Initial   params.Parameters  `json:"initial"`
	Final     params.Parameters  `json:"final"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes metadata.json and samples.csv under a fresh trace directory
// and returns the trace id. ID and Timestamp on meta are filled in.
func (s *Store) Save(meta TraceMetadata, result *sim.Result) (string, error) {
	now := time.Now()
	name := meta.Preset
	if name == "" {
		name = "trace"
	}
	meta.ID = fmt.Sprintf("%s_%d", name, now.UnixNano())
	meta.Timestamp = now
	meta.Final = result.Final
	meta.Metrics = result.Metrics

	dir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(sampleHeader); err != nil {
		return "", err
	}
	for _, smp := range result.Samples {
		if err := w.Write(encodeSample(smp)); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// List returns every readable trace, newest first.
func (s *Store) List() ([]TraceMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []TraceMetadata{}, nil
		}
		return nil, err
	}

	traces := make([]TraceMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		traces = append(traces, *meta)
	}
	sort.Slice(traces, func(i, j int) bool { return traces[i].Timestamp.After(traces[j].Timestamp) })
	return traces, nil
}

func (s *Store) Load(traceID string) (*TraceMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, traceID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTraceNotFound, traceID)
		}
		return nil, err
	}

	var meta TraceMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSamples reads samples.csv back. Malformed rows are skipped.
func (s *Store) LoadSamples(traceID string) ([]sim.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, traceID, "samples.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTraceNotFound, traceID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sim.Sample{}, nil
	}

	samples := make([]sim.Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		smp, ok := decodeSample(record)
		if !ok {
			continue
		}
		samples = append(samples, smp)
	}
	return samples, nil
}
