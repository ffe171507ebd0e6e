package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/ccdkit/ccdlint/internal/adapters/outbound/config"
	"github.com/ccdkit/ccdlint/internal/adapters/outbound/engine"
	"github.com/ccdkit/ccdlint/internal/adapters/outbound/scanner"
	"github.com/ccdkit/ccdlint/internal/application"
	"github.com/ccdkit/ccdlint/internal/domain"
)

// registerTools registers the ccdlint MCP tools on the given server.
func registerTools(s *server.MCPServer) {
	s.AddTool(
		mcplib.NewTool("ccdlint_validate_file",
			mcplib.WithDescription("Validate a single CCD/CDA document against an XSD schema and return the JSON report"),
			mcplib.WithString("xsd",
				mcplib.Required(),
				mcplib.Description("Path to the XSD schema file"),
			),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the document to validate"),
			),
		),
		handleValidateFile(),
	)

	s.AddTool(
		mcplib.NewTool("ccdlint_validate_directory",
			mcplib.WithDescription("Validate every CCD/CDA document in a directory against an XSD schema and return the JSON report"),
			mcplib.WithString("xsd",
				mcplib.Required(),
				mcplib.Description("Path to the XSD schema file"),
			),
			mcplib.WithString("dir",
				mcplib.Required(),
				mcplib.Description("Path to the directory of documents"),
			),
			mcplib.WithBoolean("recursive",
				mcplib.Description("Search subdirectories recursively"),
			),
		),
		handleValidateDirectory(),
	)
}

// newService creates the standard set of outbound adapters and the service.
func newService() *application.ValidateService {
	return application.NewValidateService(
		engine.New(),
		engine.NewMarkupParser(),
		scanner.New(),
		configAdapter.New(),
	)
}

func handleValidateFile() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		xsdPath, err := request.RequireString("xsd")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		filePath, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := newService()
		schema, err := svc.LoadSchema(xsdPath)
		if err != nil {
			return errorResult(fmt.Sprintf("schema load failed: %v", err)), nil
		}

		results := []domain.ValidationResult{svc.ValidateFile(schema, filePath)}
		return jsonResult(domain.NewReport(results, xsdPath, ""))
	}
}

func handleValidateDirectory() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		xsdPath, err := request.RequireString("xsd")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		dirPath, err := request.RequireString("dir")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		recursive, _ := request.GetArguments()["recursive"].(bool)

		svc := newService()
		schema, err := svc.LoadSchema(xsdPath)
		if err != nil {
			return errorResult(fmt.Sprintf("schema load failed: %v", err)), nil
		}

		results, err := svc.ValidateDirectory(schema, dirPath, recursive, nil)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(domain.NewReport(results, xsdPath, ""))
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
