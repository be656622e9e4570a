package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"dexscan/internal/adapters/filesystem"
	mcpadapter "dexscan/internal/adapters/mcp"
	"dexscan/internal/adapters/qmd"
	"dexscan/internal/adapters/sqlite"
	"dexscan/internal/config"
	"dexscan/internal/ports"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	flag.Parse()

	repo, err := filesystem.NewRepository(*vaultFlag)
	if err != nil {
		log.Fatalf("dexscan-mcp: %v", err)
	}

	// The link index is optional; backlink queries report unavailability.
	var links ports.LinkIndex
	idx := sqlite.NewIndex()
	if err := idx.Open(repo.Root()); err == nil {
		defer idx.Close()
		if idx.NeedsFullRebuild() {
			idx.SyncFull()
		} else {
			idx.SyncIncremental()
		}
		links = idx
	}

	mcpServer := server.NewMCPServer(
		"dexscan-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterScanTools(mcpServer, repo, qmd.NewClient(), links)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("dexscan-mcp: %v", err)
	}
}
