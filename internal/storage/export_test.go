package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/flipsort/internal/sorting"
)

func TestExportJSON(t *testing.T) {
	input := sorting.NewItems(2, 1)
	data := ExportData{
		Algorithm: "insertionSort",
		Label:     "Insertion Sort",
		Input:     input,
		Steps:     sorting.Run(sorting.Insertion, input),
	}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, data); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var decoded ExportData
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(decoded.Steps) != len(data.Steps) {
		t.Errorf("expected %d steps, got %d", len(data.Steps), len(decoded.Steps))
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"highlights": []`)) {
		t.Error("boundary steps should encode empty highlights as []")
	}
}

func TestExportJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")
	if err := ExportJSONFile(path, ExportData{Algorithm: "quickSort"}); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}
