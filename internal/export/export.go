package export

import (
	"fmt"
	"sort"

	"github.com/san-kum/chaosgen/internal/dataset"
)

// WriteFunc renders a dataset to a file at path.
type WriteFunc func(path string, ds *dataset.Dataset) error

type Registry struct {
	formats map[string]WriteFunc
}

func NewRegistry() *Registry {
	r := &Registry{formats: make(map[string]WriteFunc)}

	r.formats["csv"] = WriteCSV
	r.formats["json"] = WriteJSON
	r.formats["xlsx"] = WriteXLSX
	r.formats["svg"] = WriteSVG

	return r
}

func (r *Registry) Write(format, path string, ds *dataset.Dataset) error {
	fn, ok := r.formats[format]
	if !ok {
		return fmt.Errorf("unknown format: %s", format)
	}
	return fn(path, ds)
}

func (r *Registry) ListFormats() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
