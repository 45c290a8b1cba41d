package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

const (
	metadataFile = "metadata.json"
	rowsFile     = "results.csv"
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Timestamp   time.Time `json:"timestamp"`
	Scenario    string    `json:"scenario"`
	SolarFlux   float64   `json:"solar_flux"`
	Years       float64   `json:"years"`
	AmbientTemp float64   `json:"ambient_temp"`
	Tolerance   float64   `json:"tolerance"`
	MaxIter     int       `json:"max_iter"`
	Rows        int       `json:"rows"`
}

// Row is one solved material in a run.
type Row struct {
	Material          string  `csv:"material" json:"material"`
	EmissivityIR      float64 `csv:"emissivity_ir" json:"emissivity_ir"`
	AbsorptivitySolar float64 `csv:"absorptivity_solar" json:"absorptivity_solar"`
	Ratio             float64 `csv:"ratio" json:"ratio"`
	TemperatureK      float64 `csv:"temperature_k" json:"temperature_k"`
	TemperatureC      float64 `csv:"temperature_c" json:"temperature_c"`
	Iterations        int     `csv:"iterations" json:"iterations"`
	Converged         bool    `csv:"converged" json:"converged"`
}

var ErrInvalidName = errors.New("storage: invalid run name")

// CheckName rejects run kinds and ids that would escape the data directory.
func CheckName(name string) error {
	if name == "" || name == "." || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Save writes a run directory holding metadata.json and results.csv and
// returns the run id. ID, Timestamp and Rows are filled in by Save.
func (s *Store) Save(meta RunMetadata, rows []Row) (string, error) {
	now := s.now()
	if meta.Kind == "" {
		meta.Kind = "run"
	}
	if err := CheckName(meta.Kind); err != nil {
		return "", err
	}
	meta.ID = fmt.Sprintf("%s_%d", meta.Kind, now.UnixNano())
	meta.Timestamp = now
	meta.Rows = len(rows)

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	err := writeFile(filepath.Join(runDir, metadataFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err != nil {
		return "", err
	}

	err = writeFile(filepath.Join(runDir, rowsFile), func(w io.Writer) error {
		if len(rows) == 0 {
			return nil
		}
		return gocsv.Marshal(&rows, w)
	})
	if err != nil {
		return "", err
	}
	return meta.ID, nil
}

// writeFile creates path, fills it with fn and reports the Close error too.
func writeFile(path string, fn func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(f)
}

// List returns all readable runs, oldest first. Directories without valid
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	if err := CheckName(runID); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadRows(runID string) ([]Row, error) {
	if err := CheckName(runID); err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(s.baseDir, runID, rowsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows := make([]Row, 0)
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return rows, nil
		}
		return nil, err
	}
	return rows, nil
}

type ExportData struct {
	RunMetadata
	Results []Row `json:"results"`
}

// ExportJSON writes a run's metadata and rows as one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	rows, err := s.LoadRows(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, Results: rows})
}
