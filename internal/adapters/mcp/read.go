package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"recall/internal/application/commands"
	"recall/internal/domain"
	"recall/internal/ports"
)

// RegisterReadTools adds all read-only note tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.NoteStore, titles ports.TitleExtractor) {
	s.AddTool(pingTool(), pingHandler)
	s.AddTool(readTool(), readHandler(store))
	s.AddTool(listTool(), listHandler(store, titles))
}

// --- ping ---

func pingTool() mcp.Tool {
	return mcp.NewTool("ping",
		mcp.WithDescription("Health check, returns pong"),
	)
}

func pingHandler(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("pong"), nil
}

// --- read_note ---

func readTool() mcp.Tool {
	return mcp.NewTool("read_note",
		mcp.WithDescription("Read a note and every note beneath it, the note itself first."),
		mcp.WithString("path",
			mcp.Description("Space separated note path (e.g. \"vim surround\")"),
			mcp.Required(),
		),
	)
}

func readHandler(store ports.NoteStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := strings.Fields(req.GetString("path", ""))
		if len(path) == 0 {
			return toolError(fmt.Errorf("path is required"))
		}

		result, err := commands.NewReadCommand(store, path).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Output), nil
	}
}

// --- list_notes ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_notes",
		mcp.WithDescription("List notes with their titles. Without a path lists the whole store."),
		mcp.WithString("path",
			mcp.Description("Space separated note path to list beneath. Omit to list everything."),
		),
	)
}

func listHandler(store ports.NoteStore, titles ports.TitleExtractor) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := strings.Fields(req.GetString("path", ""))

		notes, err := commands.NewListCommand(store, titles, path).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(notes, formatNote)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatNote(n domain.Note) string {
	if n.Title == "" {
		return n.Path.String()
	}
	return fmt.Sprintf("%s  %s", n.Path, n.Title)
}
