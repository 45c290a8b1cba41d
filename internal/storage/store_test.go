package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func sampleRows() []Row {
	return []Row{
		{Material: "White Paint", EmissivityIR: 0.9, AbsorptivitySolar: 0.18, Ratio: 0.2, TemperatureK: 186.3, TemperatureC: -86.85, Iterations: 6, Converged: true},
		{Material: "Black Paint", EmissivityIR: 0.92, AbsorptivitySolar: 0.95, Ratio: 1.0326, TemperatureK: 250.1, TemperatureC: -23.05, Iterations: 5, Converged: true},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta := RunMetadata{
		Kind:        "equilibrium",
		Scenario:    "Earth Orbit Average",
		SolarFlux:   341.5,
		AmbientTemp: 3,
		Tolerance:   1e-9,
		MaxIter:     100,
	}

	runID, err := st.Save(meta, sampleRows())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.ID != runID {
		t.Errorf("expected id %q, got %q", runID, loaded.ID)
	}
	if loaded.Scenario != "Earth Orbit Average" {
		t.Errorf("expected scenario 'Earth Orbit Average', got '%s'", loaded.Scenario)
	}
	if loaded.SolarFlux != 341.5 {
		t.Errorf("expected flux 341.5, got %f", loaded.SolarFlux)
	}
	if loaded.Rows != 2 {
		t.Errorf("expected 2 rows recorded, got %d", loaded.Rows)
	}

	rows, err := st.LoadRows(runID)
	if err != nil {
		t.Fatalf("load rows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0] != sampleRows()[0] {
		t.Errorf("row mismatch: %+v", rows[0])
	}
}

func TestStoreEmptyRun(t *testing.T) {
	st := New(t.TempDir())
	runID, err := st.Save(RunMetadata{Kind: "sweep"}, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	rows, err := st.LoadRows(runID)
	if err != nil {
		t.Fatalf("load rows failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	st.now = func() time.Time {
		tick++
		return base.Add(time.Duration(-tick) * time.Hour)
	}

	first, err := st.Save(RunMetadata{Kind: "equilibrium"}, sampleRows())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	second, err := st.Save(RunMetadata{Kind: "degrade"}, sampleRows())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// stray directory without metadata
	if err := os.MkdirAll(filepath.Join(tmpDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second || runs[1].ID != first {
		t.Errorf("expected oldest first, got %s, %s", runs[0].ID, runs[1].ID)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runID, err := st.Save(RunMetadata{Kind: "equilibrium"}, sampleRows())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "results.csv")); os.IsNotExist(err) {
		t.Error("results.csv not created")
	}
}

func TestStoreExportJSON(t *testing.T) {
	st := New(t.TempDir())
	runID, err := st.Save(RunMetadata{Kind: "equilibrium", Scenario: "Mars Orbit"}, sampleRows())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, runID); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var out ExportData
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.ID != runID || out.Scenario != "Mars Orbit" {
		t.Errorf("unexpected metadata %+v", out.RunMetadata)
	}
	if len(out.Results) != 2 || out.Results[1].Material != "Black Paint" {
		t.Errorf("unexpected results %+v", out.Results)
	}

	if err := st.ExportJSON(&buf, "missing"); err == nil {
		t.Error("expected error for missing run")
	}
}

func TestStoreRejectsEscapingNames(t *testing.T) {
	base := filepath.Join(t.TempDir(), "data")
	st := New(base)

	for _, kind := range []string{"../../x", "..", "a/b", `a\b`, "."} {
		if _, err := st.Save(RunMetadata{Kind: kind}, sampleRows()); !errors.Is(err, ErrInvalidName) {
			t.Errorf("kind %q: expected ErrInvalidName, got %v", kind, err)
		}
	}
	entries, err := os.ReadDir(filepath.Dir(base))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "data" {
			t.Errorf("unexpected entry %s written outside the data dir", e.Name())
		}
	}

	if _, err := st.Load("../secret"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Load: expected ErrInvalidName, got %v", err)
	}
	if _, err := st.LoadRows("../secret"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("LoadRows: expected ErrInvalidName, got %v", err)
	}
}

func TestWriteFile_ReportsFillError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	want := errors.New("encode failed")
	if err := writeFile(path, func(io.Writer) error { return want }); !errors.Is(err, want) {
		t.Errorf("expected fill error, got %v", err)
	}
	if err := writeFile(filepath.Join(t.TempDir(), "missing", "out.txt"), func(io.Writer) error { return nil }); err == nil {
		t.Error("expected create error for a missing directory")
	}
}
