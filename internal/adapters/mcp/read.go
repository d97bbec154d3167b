package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"naskah/internal/application/commands"
	"naskah/internal/domain"
	"naskah/internal/ports"
)

// RegisterReadTools adds all read-only manuscript tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.ManuscriptStore) {
	s.AddTool(listChaptersTool(), listChaptersHandler(store))
	s.AddTool(readChapterTool(), readChapterHandler(store))
}

// --- list_chapters ---

func listChaptersTool() mcp.Tool {
	return mcp.NewTool("list_chapters",
		mcp.WithDescription("List all chapters in manuscript order with their ids, structural roles, and derived chapter numbers."),
	)
}

func listChaptersHandler(store ports.ManuscriptStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rows, err := commands.NewListCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(rows) == 0 {
			return mcp.NewToolResultText("No chapters."), nil
		}

		var sb strings.Builder
		for _, row := range rows {
			sb.WriteString(formatRow(row))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func formatRow(row commands.ChapterRow) string {
	ch := row.Chapter
	label := ch.Type.Label()
	if ch.Type == domain.TypeChapter {
		label = fmt.Sprintf("Chapter %d", row.PageNumber)
	}
	line := fmt.Sprintf("%s  [%s]  %s", ch.ID, label, ch.Title)
	if n := len(ch.SubChapters); n > 0 {
		line += fmt.Sprintf("  (%d sub-chapters)", n)
	}
	return line
}

// --- read_chapter ---

func readChapterTool() mcp.Tool {
	return mcp.NewTool("read_chapter",
		mcp.WithDescription("Read one chapter by id, including its sub-chapters in reading order."),
		mcp.WithString("id",
			mcp.Description("Chapter id"),
			mcp.Required(),
		),
	)
}

func readChapterHandler(store ports.ManuscriptStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		chapters, err := store.Chapters(ctx)
		if err != nil {
			return toolError(err)
		}

		for _, ch := range chapters {
			if ch.ID != id {
				continue
			}
			var sb strings.Builder
			fmt.Fprintf(&sb, "# %s [%s]\n\n", ch.Title, ch.Type.Label())
			if ch.Content != "" {
				sb.WriteString(ch.Content)
				sb.WriteString("\n")
			}
			for _, sub := range ch.SubChapters {
				fmt.Fprintf(&sb, "\n## %s\n\n%s\n", sub.Title, sub.Content)
			}
			return mcp.NewToolResultText(sb.String()), nil
		}
		return toolError(fmt.Errorf("chapter not found: %s", id))
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
