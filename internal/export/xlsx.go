package export

import (
	"github.com/san-kum/chaosgen/internal/dataset"
	"github.com/xuri/excelize/v2"
)

func WriteXLSX(path string, ds *dataset.Dataset) error {
	f := excelize.NewFile()

	// Ensure Sheet1 exists and is active.
	sheet := "Sheet1"
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}

	headers := []string{"x0", "y"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i := range ds.X0 {
		rowIdx := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
		if err := f.SetCellValue(sheet, cell, ds.X0[i]); err != nil {
			return err
		}
		cell, _ = excelize.CoordinatesToCellName(2, rowIdx)
		if err := f.SetCellValue(sheet, cell, ds.Y[i]); err != nil {
			return err
		}
	}

	if err := writeRunSheet(f, ds); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// writeRunSheet records the run parameters and metrics next to the data.
func writeRunSheet(f *excelize.File, ds *dataset.Dataset) error {
	sheet := "run"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"samples", ds.Config.Samples},
		{"depth", ds.Config.Depth},
		{"rate", ds.Config.Rate},
		{"seed", ds.Config.Seed},
		{"workers", ds.Config.Workers},
	}
	for name, value := range ds.Metrics {
		rows = append(rows, []interface{}{name, value})
	}

	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
