package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/chaosgen/internal/dataset"
)

type exportData struct {
	Samples int                `json:"samples"`
	Depth   int                `json:"depth"`
	Rate    float64            `json:"rate"`
	Seed    int64              `json:"seed"`
	X0      []float64          `json:"x0"`
	Y       []float64          `json:"y"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

func WriteJSON(path string, ds *dataset.Dataset) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return encodeJSON(file, ds)
}

// WriteJSONStdout prints the dataset to stdout for piping.
func WriteJSONStdout(ds *dataset.Dataset) error {
	return encodeJSON(os.Stdout, ds)
}

func encodeJSON(w io.Writer, ds *dataset.Dataset) error {
	data := exportData{
		Samples: ds.Config.Samples,
		Depth:   ds.Config.Depth,
		Rate:    ds.Config.Rate,
		Seed:    ds.Config.Seed,
		X0:      ds.X0,
		Y:       ds.Y,
		Metrics: ds.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
