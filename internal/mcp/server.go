// ABOUTME: MCP server setup for the ASA24 analyzer.
// ABOUTME: Wraps the MCP server with a loaded dataset snapshot.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/dataset"
)

// Server wraps the MCP server with read-only access to one dataset load.
type Server struct {
	mcpServer *mcp.Server
	ds        *dataset.Dataset
}

// NewServer creates an MCP server over the given dataset.
func NewServer(ds *dataset.Dataset) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "asa24",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		ds:        ds,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
