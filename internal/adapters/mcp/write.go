package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"recall/internal/adapters/prompt"
	"recall/internal/application/commands"
	"recall/internal/ports"
)

// RegisterWriteTools adds the note tools that change the store to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.NoteStore) {
	s.AddTool(createTool(), createHandler(store))
	s.AddTool(deleteTool(), deleteHandler(store))
}

// --- create_note ---

func createTool() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription("Create a note and any missing parents. Each new level gets a markdown stub with a heading. Existing levels are left untouched."),
		mcp.WithString("path",
			mcp.Description("Space separated note path (e.g. \"swift keypath\")"),
			mcp.Required(),
		),
	)
}

func createHandler(store ports.NoteStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := strings.Fields(req.GetString("path", ""))

		result, err := commands.NewCreateCommand(store, path).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message()), nil
	}
}

// --- delete_note ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete_note",
		mcp.WithDescription("Delete a note and everything beneath it. Irreversible. Call without confirm to preview what would be removed, then again with confirm set to YES."),
		mcp.WithString("path",
			mcp.Description("Space separated note path"),
			mcp.Required(),
		),
		mcp.WithString("confirm",
			mcp.Description("Must be exactly YES to delete"),
		),
	)
}

// answerConfirmer confirms with an answer supplied up front
type answerConfirmer string

func (a answerConfirmer) Confirm(_ []string) (bool, error) {
	return prompt.IsConfirmed(string(a)), nil
}

func deleteHandler(store ports.NoteStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := strings.Fields(req.GetString("path", ""))
		confirm := req.GetString("confirm", "")

		cmd := commands.NewDeleteCommand(store, answerConfirmer(confirm), path)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if result.Cancelled {
			var sb strings.Builder
			sb.WriteString("Nothing deleted. The following would be removed:\n")
			for _, e := range result.Entries {
				fmt.Fprintf(&sb, "- %s\n", e)
			}
			sb.WriteString("Call again with confirm=YES to delete.")
			return mcp.NewToolResultText(sb.String()), nil
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
