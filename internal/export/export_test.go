package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/san-kum/chaosgen/internal/dataset"
	"github.com/xuri/excelize/v2"
)

func testDataset() *dataset.Dataset {
	return &dataset.Dataset{
		X0:     []float64{-0.75, 0.0, 0.5},
		Y:      []float64{0.2135, -1.0, -0.191},
		Config: dataset.Config{Samples: 3, Depth: 40, Rate: 1.618, Seed: 42, Workers: 1},
		Metrics: map[string]float64{
			"bounded_share": 1.0,
		},
	}
}

func TestRegistry_UnknownFormat(t *testing.T) {
	r := NewRegistry()

	err := r.Write("parquet", filepath.Join(t.TempDir(), "out"), testDataset())
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "parquet") {
		t.Errorf("expected error to name the format, got %v", err)
	}
}

func TestRegistry_ListFormats(t *testing.T) {
	formats := NewRegistry().ListFormats()

	want := []string{"csv", "json", "svg", "xlsx"}
	if len(formats) != len(want) {
		t.Fatalf("expected %d formats, got %v", len(want), formats)
	}
	for i, f := range want {
		if formats[i] != f {
			t.Errorf("expected format %s at %d, got %s", f, i, formats[i])
		}
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	ds := testDataset()

	if err := WriteCSV(path, ds); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != ds.Len()+1 {
		t.Fatalf("expected %d rows, got %d", ds.Len()+1, len(records))
	}
	if records[0][0] != "x0" || records[0][1] != "y" {
		t.Errorf("expected header x0,y, got %v", records[0])
	}

	x0, err := strconv.ParseFloat(records[1][0], 64)
	if err != nil {
		t.Fatal(err)
	}
	if x0 != -0.75 {
		t.Errorf("expected exact -0.75, got %v", x0)
	}
}

type failingSink struct{}

func (failingSink) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestWriteCSV_SurfacesFlushError(t *testing.T) {
	// Rows this small stay buffered until the final flush, so the write
	// error only appears there.
	if err := writeCSV(failingSink{}, testDataset()); err == nil {
		t.Error("expected the flush error to surface")
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	ds := testDataset()

	if err := WriteJSON(path, ds); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded exportData
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded.Rate != 1.618 {
		t.Errorf("expected rate 1.618, got %v", decoded.Rate)
	}
	if decoded.Seed != 42 {
		t.Errorf("expected seed 42, got %d", decoded.Seed)
	}
	if len(decoded.X0) != 3 || len(decoded.Y) != 3 {
		t.Errorf("expected 3 samples, got %d/%d", len(decoded.X0), len(decoded.Y))
	}
	if decoded.Y[1] != -1.0 {
		t.Errorf("expected exact -1.0, got %v", decoded.Y[1])
	}
	if decoded.Metrics["bounded_share"] != 1.0 {
		t.Errorf("expected bounded_share 1.0, got %v", decoded.Metrics["bounded_share"])
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	ds := testDataset()

	if err := WriteXLSX(path, ds); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue("Sheet1", "A1")
	if err != nil {
		t.Fatal(err)
	}
	if header != "x0" {
		t.Errorf("expected header x0, got %s", header)
	}

	raw, err := f.GetCellValue("Sheet1", "B2")
	if err != nil {
		t.Fatal(err)
	}
	y0, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		t.Fatal(err)
	}
	if y0 != 0.2135 {
		t.Errorf("expected 0.2135, got %v", y0)
	}

	if idx, err := f.GetSheetIndex("run"); err != nil || idx == -1 {
		t.Error("expected a run sheet with the parameters")
	}
}

func TestScatterSVG(t *testing.T) {
	ds := testDataset()
	svg := ScatterSVG(ds.X0, ds.Y, 400, 300)

	if !strings.Contains(svg, "<svg") {
		t.Error("expected svg header")
	}
	if got := strings.Count(svg, "<circle"); got != ds.Len() {
		t.Errorf("expected %d circles, got %d", ds.Len(), got)
	}
}

func TestScatterSVG_Empty(t *testing.T) {
	if svg := ScatterSVG(nil, nil, 400, 300); svg != "" {
		t.Error("expected empty string for no data")
	}
	if svg := ScatterSVG([]float64{1}, []float64{1, 2}, 400, 300); svg != "" {
		t.Error("expected empty string for mismatched lengths")
	}
}

func TestPathSVG(t *testing.T) {
	points := []struct{ X, Y float64 }{
		{0, 0}, {0, -1}, {-1, -1}, {-1, 0.618},
	}
	svg := PathSVG(points, 400, 300, "#00ffcc")

	if !strings.Contains(svg, "<path") {
		t.Error("expected a path element")
	}
	if !strings.Contains(svg, "#00ffcc") {
		t.Error("expected the stroke color")
	}
	if strings.Count(svg, " L") != len(points)-1 {
		t.Errorf("expected %d line segments", len(points)-1)
	}
}

func TestPathSVG_TooFewPoints(t *testing.T) {
	if svg := PathSVG([]struct{ X, Y float64 }{{0, 0}}, 400, 300, "#fff"); svg != "" {
		t.Error("expected empty string for a single point")
	}
}

func TestRegistry_WriteSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")

	if err := NewRegistry().Write("svg", path, testDataset()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("expected closing svg tag")
	}
}
