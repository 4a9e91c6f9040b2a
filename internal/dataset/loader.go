// ABOUTME: CSV directory loader for ASA24 export files.
// ABOUTME: Maps each file to its export category and parses it into a Table.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Load reads every .csv file in dir into a Dataset. The export category is
// the filename segment after the last underscore with the extension
// stripped, so "MOMMA_2024-01-15_Totals.csv" loads as "Totals". Files that
// fail to parse are logged and skipped; non-CSV files are ignored.
func Load(dir string) (*Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data directory: %w", err)
	}

	tables := map[string]*Table{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		category := categoryFromFilename(entry.Name())
		t, err := loadCSV(filepath.Join(dir, entry.Name()), category)
		if err != nil {
			slog.Warn("skipping unparseable export file", "file", entry.Name(), "error", err)
			continue
		}
		if _, dup := tables[category]; dup {
			slog.Warn("duplicate export category, keeping later file", "category", category, "file", entry.Name())
		}
		tables[category] = t
	}

	return New(tables), nil
}

// categoryFromFilename extracts the export category: the segment after the
// last underscore, extension stripped. Filenames without an underscore use
// the whole stem.
func categoryFromFilename(name string) string {
	stem := strings.TrimSuffix(name, ".csv")
	if i := strings.LastIndex(stem, "_"); i >= 0 {
		return stem[i+1:]
	}
	return stem
}

func loadCSV(path, category string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	// ASA24 exports occasionally pad trailing fields unevenly.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, record)
	}

	return NewTable(category, header, rows), nil
}
