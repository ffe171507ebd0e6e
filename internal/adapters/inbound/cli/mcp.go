package cli

import (
	mcpadapter "github.com/ccdkit/ccdlint/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the ccdlint MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start ccdlint MCP server (stdio)",
		Long:  "Start the ccdlint MCP server using stdio transport. This allows AI coding assistants to validate documents and receive the JSON report.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewCCDLintMCPServer()
			return server.ServeStdio(s)
		},
	}
}
