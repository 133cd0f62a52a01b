package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/chaosgen/internal/dataset"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Samples   int                `json:"samples"`
	Depth     int                `json:"depth"`
	Rate      float64            `json:"rate"`
	Seed      int64              `json:"seed"`
	Workers   int                `json:"workers"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Config rebuilds the generator configuration that produced the run.
func (m RunMetadata) Config() dataset.Config {
	return dataset.Config{
		Samples: m.Samples,
		Depth:   m.Depth,
		Rate:    m.Rate,
		Seed:    m.Seed,
		Workers: m.Workers,
	}
}

func (s *Store) Save(ds *dataset.Dataset) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Samples:   ds.Config.Samples,
		Depth:     ds.Config.Depth,
		Rate:      ds.Config.Rate,
		Seed:      ds.Config.Seed,
		Workers:   ds.Config.Workers,
		Metrics:   ds.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if ds.Len() == 0 {
		return runID, nil
	}

	csvPath := filepath.Join(runDir, "samples.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)

	if err := w.Write([]string{"x0", "y"}); err != nil {
		return "", err
	}

	// -1 precision keeps the exact bits across a reload.
	for i := range ds.X0 {
		row := []string{
			strconv.FormatFloat(ds.X0[i], 'g', -1, 64),
			strconv.FormatFloat(ds.Y[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSamples(runID string) ([]float64, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "samples.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []float64{}, []float64{}, nil
	}

	x0 := make([]float64, 0, len(records)-1)
	y := make([]float64, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}

		xv, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		yv, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}

		x0 = append(x0, xv)
		y = append(y, yv)
	}

	return x0, y, nil
}

// LoadDataset rebuilds a saved run, metadata and samples together.
func (s *Store) LoadDataset(runID string) (*dataset.Dataset, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	x0, y, err := s.LoadSamples(runID)
	if err != nil {
		return nil, err
	}

	return &dataset.Dataset{
		X0:      x0,
		Y:       y,
		Config:  meta.Config(),
		Metrics: meta.Metrics,
	}, nil
}
