// ABOUTME: MCP tool implementations for dietary-recall analysis.
// ABOUTME: Exposes subject listing, the summary projections, and HEI scoring.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/hei"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/report"
)

func (s *Server) registerTools() {
	// list_subjects
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_subjects",
		Description: "List all subject identifiers present in the loaded data",
	}, s.handleListSubjects)

	// get_nutrient_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_nutrient_summary",
		Description: "Daily nutrient intake per subject and visit",
	}, s.handleNutrientSummary)

	// get_food_group_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_food_group_summary",
		Description: "Food group intake (cup/oz equivalents) per subject and visit",
	}, s.handleFoodGroupSummary)

	// get_supplement_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_supplement_summary",
		Description: "Supplement intake records per subject and visit",
	}, s.handleSupplementSummary)

	// get_meal_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_meal_summary",
		Description: "Item counts and macro totals per subject, visit, and meal",
	}, s.handleMealSummary)

	// get_food_items
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_food_items",
		Description: "Detailed food item list with visit and meal labels",
	}, s.handleFoodItems)

	// get_hei_scores
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_hei_scores",
		Description: "HEI-2015 diet quality scores (13 components, 0-100 total) per subject and visit",
	}, s.handleHEIScores)
}

// Tool input/output types

type subjectFilterInput struct {
	Subjects []string `json:"subjects,omitempty" jsonschema:"Restrict to these subject ids; empty means all subjects"`
}

type subjectsOutput struct {
	Subjects []string `json:"subjects"`
	Count    int      `json:"count"`
}

// Tool handlers

func (s *Server) handleListSubjects(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, subjectsOutput, error) {
	subjects := s.ds.Subjects()
	return nil, subjectsOutput{Subjects: subjects, Count: len(subjects)}, nil
}

func (s *Server) handleNutrientSummary(ctx context.Context, req *mcp.CallToolRequest, input subjectFilterInput) (*mcp.CallToolResult, any, error) {
	return s.reportResult(report.NutrientSummary(s.ds, input.Subjects))
}

func (s *Server) handleFoodGroupSummary(ctx context.Context, req *mcp.CallToolRequest, input subjectFilterInput) (*mcp.CallToolResult, any, error) {
	return s.reportResult(report.FoodGroupSummary(s.ds, input.Subjects))
}

func (s *Server) handleSupplementSummary(ctx context.Context, req *mcp.CallToolRequest, input subjectFilterInput) (*mcp.CallToolResult, any, error) {
	return s.reportResult(report.SupplementSummary(s.ds, input.Subjects))
}

func (s *Server) handleMealSummary(ctx context.Context, req *mcp.CallToolRequest, input subjectFilterInput) (*mcp.CallToolResult, any, error) {
	return s.reportResult(report.MealSummary(s.ds, input.Subjects))
}

func (s *Server) handleFoodItems(ctx context.Context, req *mcp.CallToolRequest, input subjectFilterInput) (*mcp.CallToolResult, any, error) {
	return s.reportResult(report.FoodItems(s.ds, input.Subjects))
}

func (s *Server) handleHEIScores(ctx context.Context, req *mcp.CallToolRequest, input subjectFilterInput) (*mcp.CallToolResult, any, error) {
	scores, err := hei.Scores(s.ds, input.Subjects)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to score records: %w", err)
	}
	if len(scores) == 0 {
		return nil, map[string]any{"message": "No totals records found."}, nil
	}
	return nil, scores, nil
}

func (s *Server) reportResult(r *report.Report, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build report: %w", err)
	}
	if r.Empty() {
		return nil, map[string]any{"message": "No records found."}, nil
	}
	return nil, r, nil
}
