package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"naskah/internal/adapters/filesystem"
	"naskah/internal/application"
	"naskah/internal/application/commands"
	"naskah/internal/ports"
)

// RegisterWriteTools adds all mutating manuscript tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.ManuscriptStore, ids ports.IDGenerator) {
	s.AddTool(addChapterTool(), addChapterHandler(store, ids))
	s.AddTool(reorderChaptersTool(), reorderChaptersHandler(store))
	s.AddTool(removeChapterTool(), removeChapterHandler(store))
	s.AddTool(importDirectoryTool(), importDirectoryHandler(store, ids))
}

// --- add_chapter ---

func addChapterTool() mcp.Tool {
	return mcp.NewTool("add_chapter",
		mcp.WithDescription("Add an empty chapter. It is inserted at the end of its structural segment (front matter, body, back matter)."),
		mcp.WithString("title",
			mcp.Description("Chapter title"),
			mcp.Required(),
		),
		mcp.WithString("type",
			mcp.Description("Structural role: frontmatter, chapter, or backmatter (default chapter)"),
		),
	)
}

func addChapterHandler(store ports.ManuscriptStore, ids ports.IDGenerator) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title := req.GetString("title", "")
		chapterType, err := application.ParseChapterType(req.GetString("type", string(application.TypeChapter)))
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewAddChapterCommand(store, ids, title, chapterType).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message + " (id " + result.Chapter.ID + ")"), nil
	}
}

// --- reorder_chapters ---

func reorderChaptersTool() mcp.Tool {
	return mcp.NewTool("reorder_chapters",
		mcp.WithDescription("Reorder the manuscript. Takes the complete list of chapter ids in the desired order; rejected if it is not a permutation of the current list."),
		mcp.WithString("ids",
			mcp.Description("Comma-separated chapter ids in the new order"),
			mcp.Required(),
		),
	)
}

func reorderChaptersHandler(store ports.ManuscriptStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw := req.GetString("ids", "")
		if raw == "" {
			return toolError(fmt.Errorf("ids is required"))
		}

		var order []string
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				order = append(order, id)
			}
		}

		result, err := commands.NewReorderCommand(store, order).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- remove_chapter ---

func removeChapterTool() mcp.Tool {
	return mcp.NewTool("remove_chapter",
		mcp.WithDescription("Remove a chapter by id."),
		mcp.WithString("id",
			mcp.Description("Chapter id"),
			mcp.Required(),
		),
	)
}

func removeChapterHandler(store ports.ManuscriptStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		result, err := commands.NewRemoveChapterCommand(store, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- import_directory ---

func importDirectoryTool() mcp.Tool {
	return mcp.NewTool("import_directory",
		mcp.WithDescription("Import an upload directory of manuscript files. Chapter folders follow \"BAB <n> - <title>\", sub-chapter files \"<n>.<m> <title>.txt\"; front and back matter files are detected by name."),
		mcp.WithString("path",
			mcp.Description("Directory to import"),
			mcp.Required(),
		),
	)
}

func importDirectoryHandler(store ports.ManuscriptStore, ids ports.IDGenerator) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir := req.GetString("path", "")
		if dir == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		source := filesystem.NewSource(dir)
		result, err := commands.NewImportCommand(store, source, ids).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
