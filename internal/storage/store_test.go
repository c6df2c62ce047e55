package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/gravitylab/internal/params"
	"github.com/san-kum/gravitylab/internal/physics"
	"github.com/san-kum/gravitylab/internal/sim"
)

func testResult() *sim.Result {
	return &sim.Result{
		Samples: []sim.Sample{
			{Frame: 0, Time: 0.012, Angle: 0.0267, MoonX: 1000, MoonY: 369, Distance: 350, Velocity: 1, AutoOrbit: true, TrailLen: 1, Force: 35.57, Stability: 100, Status: physics.Stable, ArrowLength: 35},
			{Frame: 1, Time: 0.024, Angle: 0.0267, MoonX: 920, MoonY: 360, Distance: 350, Velocity: 1.18, AutoOrbit: false, TrailLen: 0, Force: 35.57, Stability: 82, Status: physics.Decaying, ArrowLength: 35},
		},
		Final:   params.Defaults(),
		Metrics: map[string]float64{"stable_fraction": 0.5},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	traceID, err := st.Save(TraceMetadata{Preset: "earth-moon", Seed: 42, Frames: 2, Initial: params.Defaults()}, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if traceID == "" {
		t.Error("expected non-empty trace id")
	}

	meta, err := st.Load(traceID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Preset != "earth-moon" {
		t.Errorf("expected preset 'earth-moon', got '%s'", meta.Preset)
	}
	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if meta.Metrics["stable_fraction"] != 0.5 {
		t.Errorf("expected stable_fraction 0.5, got %f", meta.Metrics["stable_fraction"])
	}

	samples, err := st.LoadSamples(traceID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[1].Status != physics.Decaying || samples[1].AutoOrbit || samples[0].TrailLen != 1 {
		t.Errorf("samples did not survive the round trip: %+v", samples)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	for _, preset := range []string{"escape", "decay"} {
		if _, err := st.Save(TraceMetadata{Preset: preset}, testResult()); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(st.baseDir, "stray.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	traces, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(traces) != 2 {
		t.Errorf("expected 2 traces, got %d", len(traces))
	}
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))
	traces, err := st.List()
	if err != nil || len(traces) != 0 {
		t.Errorf("expected empty list, got %v, %v", traces, err)
	}
}

func TestStoreLoad_NotFound(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); !errors.Is(err, ErrTraceNotFound) {
		t.Errorf("expected ErrTraceNotFound, got %v", err)
	}
	if _, err := st.LoadSamples("nope"); !errors.Is(err, ErrTraceNotFound) {
		t.Errorf("expected ErrTraceNotFound, got %v", err)
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	traceID, err := st.Save(TraceMetadata{Preset: "manual"}, testResult())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, traceID); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	var out ExportData
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if out.ID != traceID || len(out.Samples) != 2 {
		t.Errorf("unexpected export: id=%s samples=%d", out.ID, len(out.Samples))
	}
}
