// ABOUTME: Terminal table rendering for report output.
// ABOUTME: Wraps go-pretty with per-column alignment detection.
package main

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/report"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// columnAligns right-aligns columns whose every non-empty cell is numeric.
func columnAligns(r *report.Report) []columnAlignment {
	aligns := make([]columnAlignment, len(r.Columns))
	for i := range r.Columns {
		numeric := false
		for _, row := range r.Rows {
			if i >= len(row) || strings.TrimSpace(row[i]) == "" {
				continue
			}
			if _, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64); err != nil {
				numeric = false
				break
			}
			numeric = true
		}
		if numeric {
			aligns[i] = alignRight
		}
	}
	return aligns
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	// Headers are display labels; keep their case as-is.
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
