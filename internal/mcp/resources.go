// ABOUTME: MCP resource implementations for the ASA24 analyzer.
// ABOUTME: Provides asa24://subjects, asa24://tables, and asa24://hei resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/hei"
)

func (s *Server) registerResources() {
	// asa24://subjects - the derived subject index
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "asa24://subjects",
		Name:        "Study Subjects",
		Description: "All subject identifiers across the loaded export tables",
		MIMEType:    "application/json",
	}, s.handleSubjectsResource)

	// asa24://tables - loaded export categories with row counts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "asa24://tables",
		Name:        "Loaded Tables",
		Description: "Export categories loaded from the data directory",
		MIMEType:    "application/json",
	}, s.handleTablesResource)

	// asa24://hei - HEI-2015 scores for every totals record
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "asa24://hei",
		Name:        "HEI-2015 Scores",
		Description: "Diet quality scores for all subjects and visits",
		MIMEType:    "application/json",
	}, s.handleHEIResource)
}

// Resource handlers

func (s *Server) handleSubjectsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	subjects := s.ds.Subjects()
	result := map[string]any{
		"subjects": subjects,
		"count":    len(subjects),
	}
	return jsonResource("asa24://subjects", result)
}

func (s *Server) handleTablesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	tables := map[string]any{}
	for _, category := range s.ds.Categories() {
		t, _ := s.ds.Table(category)
		tables[category] = map[string]any{
			"rows":    t.Len(),
			"columns": len(t.Columns),
		}
	}
	return jsonResource("asa24://tables", tables)
}

func (s *Server) handleHEIResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	scores, err := hei.Scores(s.ds, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to score records: %w", err)
	}
	return jsonResource("asa24://hei", map[string]any{
		"scores": scores,
		"count":  len(scores),
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
