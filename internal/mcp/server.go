package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Config contains server configuration.
type Config struct {
	Workspace WorkspaceService
	Logger    *slog.Logger
}

// NewServer creates and configures an MCP server with all tools, doc
// resources and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "buildpro",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, NewHandler(cfg.Workspace))

	return server
}

// registerTools wires every catalog entry to the dispatch handler. Results
// and recognized errors are serialized as JSON text content.
func registerTools(server *sdkmcp.Server, handler *Handler) {
	for _, def := range buildToolCatalog() {
		def := def

		server.AddTool(&sdkmcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: mustSchema(def.InputSchema),
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
			result, err := handler.Handle(ctx, def.Name, req.Params.Arguments)
			if err != nil {
				var apiErr *APIError
				if errors.As(err, &apiErr) {
					return errorResult(apiErr), nil
				}
				return nil, err
			}

			payload, err := json.Marshal(result)
			if err != nil {
				return nil, fmt.Errorf("failed to encode %s result: %w", def.Name, err)
			}
			return &sdkmcp.CallToolResult{
				Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(payload)}},
			}, nil
		})
	}
}

func errorResult(apiErr *APIError) *sdkmcp.CallToolResult {
	payload, err := json.Marshal(apiErr)
	if err != nil {
		payload = []byte(apiErr.Error())
	}
	return &sdkmcp.CallToolResult{
		IsError: true,
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(payload)}},
	}
}

// mustSchema converts a catalog schema map into the SDK's schema type. The
// catalog is static, so a conversion failure is a programming error.
func mustSchema(schema map[string]any) *jsonschema.Schema {
	data, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("invalid tool schema: %v", err))
	}
	var out jsonschema.Schema
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("invalid tool schema: %v", err))
	}
	return &out
}
