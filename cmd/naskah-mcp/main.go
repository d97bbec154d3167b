package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"naskah/internal/adapters/idgen"
	mcpadapter "naskah/internal/adapters/mcp"
	"naskah/internal/adapters/sqlite"
	"naskah/internal/config"
)

func main() {
	libraryFlag := flag.String("library", config.LibraryPath(), "path to the manuscript database")
	flag.Parse()

	store, err := sqlite.Open(*libraryFlag)
	if err != nil {
		log.Fatalf("naskah-mcp: %v", err)
	}
	defer store.Close()

	mcpServer := server.NewMCPServer(
		"naskah-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	ids := idgen.NewGenerator()
	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, store, ids)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("naskah-mcp: %v", err)
	}
}
