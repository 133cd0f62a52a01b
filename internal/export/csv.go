package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/chaosgen/internal/dataset"
)

func WriteCSV(path string, ds *dataset.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeCSV(f, ds)
}

func writeCSV(w io.Writer, ds *dataset.Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"x0", "y"}); err != nil {
		return err
	}
	for i := range ds.X0 {
		row := []string{
			strconv.FormatFloat(ds.X0[i], 'g', -1, 64),
			strconv.FormatFloat(ds.Y[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
