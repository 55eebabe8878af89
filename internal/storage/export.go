package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/flipsort/internal/sorting"
)

type ExportData struct {
	Algorithm string             `json:"algorithm"`
	Label     string             `json:"label"`
	Input     []sorting.Item     `json:"input"`
	Steps     []sorting.Step     `json:"steps"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

func ExportJSON(w io.Writer, data ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func ExportJSONFile(path string, data ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ExportJSON(file, data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
