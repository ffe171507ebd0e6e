package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewCCDLintMCPServer creates a new MCP server with the ccdlint validation
// tools registered. Tools receive schema and document paths per call, so
// the server itself carries no state.
func NewCCDLintMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"ccdlint",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s)

	return s
}
