package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/flipsort/internal/sorting"
)

const (
	metadataFile = "metadata.json"
	stepsFile    = "steps.csv"
)

type Store struct {
	baseDir string
	log     *slog.Logger
	newID   func() string
}

func New(baseDir string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		baseDir: baseDir,
		log:     log.With("store", baseDir),
		newID:   func() string { return uuid.NewString()[:8] },
	}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Algorithm string             `json:"algorithm"`
	Label     string             `json:"label"`
	Timestamp time.Time          `json:"timestamp"`
	Input     []sorting.Item     `json:"input"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes one run as <base>/<id>/steps.csv and metadata.json and returns
// the new run id. Metadata is written last, so a run only becomes visible to
// List once it is complete; on failure the run directory is removed.
func (s *Store) Save(algorithm, label string, input []sorting.Item, steps []sorting.Step, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%s", algorithm, s.newID())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Algorithm: algorithm,
		Label:     label,
		Timestamp: time.Now(),
		Input:     input,
		Steps:     len(steps),
		Metrics:   metrics,
	}

	if err := writeSteps(filepath.Join(runDir, stepsFile), steps); err != nil {
		os.RemoveAll(runDir)
		return "", fmt.Errorf("write steps: %w", err)
	}
	if err := writeMetadata(filepath.Join(runDir, metadataFile), meta); err != nil {
		os.RemoveAll(runDir)
		return "", fmt.Errorf("write metadata: %w", err)
	}

	s.log.Info("saved run", "run", runID, "algorithm", algorithm, "steps", len(steps))
	return runID, nil
}

func writeSteps(path string, steps []sorting.Step) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"step", "ids", "values", "highlights", "description"}); err != nil {
		return err
	}
	for i, step := range steps {
		row := []string{
			strconv.Itoa(i),
			joinInts(step.IDs()),
			joinInts(step.Values()),
			joinInts(step.Highlights),
			step.Description,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeMetadata(path string, meta RunMetadata) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// List returns saved runs, oldest first. Directories without readable
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
			s.log.Warn("skipping run", "run", entry.Name(), "err", err)
			continue
		}
		runs = append(runs, *meta)
	}

	slices.SortFunc(runs, func(a, b RunMetadata) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}

	return &meta, nil
}

// LoadSteps rebuilds the trace of a saved run.
func (s *Store) LoadSteps(runID string) ([]sorting.Step, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, stepsFile))
	if err != nil {
		return nil, fmt.Errorf("load steps %s: %w", runID, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 5

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("load steps %s: %w", runID, err)
	}
	if len(records) < 2 {
		return []sorting.Step{}, nil
	}

	steps := make([]sorting.Step, 0, len(records)-1)
	for i, record := range records[1:] {
		ids, err := splitInts(record[1])
		if err != nil {
			return nil, fmt.Errorf("step %d ids: %w", i, err)
		}
		values, err := splitInts(record[2])
		if err != nil {
			return nil, fmt.Errorf("step %d values: %w", i, err)
		}
		highlights, err := splitInts(record[3])
		if err != nil {
			return nil, fmt.Errorf("step %d highlights: %w", i, err)
		}
		if len(ids) != len(values) {
			return nil, fmt.Errorf("step %d: %d ids for %d values", i, len(ids), len(values))
		}

		items := make([]sorting.Item, len(ids))
		for j := range ids {
			items[j] = sorting.Item{ID: ids[j], Value: values[j]}
		}
		steps = append(steps, sorting.Step{Items: items, Highlights: highlights, Description: record[4]})
	}

	return steps, nil
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func splitInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
