// ABOUTME: Export functionality for analysis reports.
// ABOUTME: Serializes a Report to JSON, YAML, CSV, or Markdown with a stamped envelope.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/report"
	"gopkg.in/yaml.v3"
)

// Format is a supported export serialization.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name from a flag or tool input.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, Format("yml"):
		return FormatYAML, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatMarkdown, Format("md"):
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown export format: %q", s)
	}
}

// Envelope wraps a report with provenance for downstream consumers.
type Envelope struct {
	Version    string         `json:"version" yaml:"version"`
	ExportID   uuid.UUID      `json:"export_id" yaml:"export_id"`
	ExportedAt time.Time      `json:"exported_at" yaml:"exported_at"`
	Tool       string         `json:"tool" yaml:"tool"`
	Report     *report.Report `json:"report" yaml:"report"`
}

// NewEnvelope stamps a report for export.
func NewEnvelope(r *report.Report) *Envelope {
	return &Envelope{
		Version:    "1.0",
		ExportID:   uuid.New(),
		ExportedAt: time.Now(),
		Tool:       "asa24",
		Report:     r,
	}
}

// Render serializes the envelope in the requested format. CSV and Markdown
// carry only the tabular payload; the envelope metadata is for the
// structured formats.
func (e *Envelope) Render(f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(e, "", "  ")
	case FormatYAML:
		return yaml.Marshal(e)
	case FormatCSV:
		return e.csvBytes()
	case FormatMarkdown:
		return []byte(e.Markdown()), nil
	default:
		return nil, fmt.Errorf("unknown export format: %q", f)
	}
}

// WriteFile renders the envelope and writes it to path.
func (e *Envelope) WriteFile(path string, f Format) error {
	data, err := e.Render(f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

func (e *Envelope) csvBytes() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(e.Report.Columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range e.Report.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Markdown renders the report as a Markdown table with a provenance header.
func (e *Envelope) Markdown() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s - %s\n\n", e.Report.Title, e.ExportedAt.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", e.ExportedAt.Format(time.RFC3339)))

	sb.WriteString("| " + strings.Join(e.Report.Columns, " | ") + " |\n")
	sep := make([]string, len(e.Report.Columns))
	for i := range sep {
		sep[i] = "---"
	}
	sb.WriteString("|" + strings.Join(sep, "|") + "|\n")
	for _, row := range e.Report.Rows {
		cells := make([]string, len(e.Report.Columns))
		for i := range cells {
			if i < len(row) {
				cells[i] = strings.ReplaceAll(row[i], "|", "\\|")
			}
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return sb.String()
}
