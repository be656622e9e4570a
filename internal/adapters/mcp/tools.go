package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"dexscan/internal/application/commands"
	"dexscan/internal/domain"
	"dexscan/internal/ports"
)

// RegisterScanTools adds all vault scanning tools to the MCP server.
func RegisterScanTools(s *server.MCPServer, repo ports.VaultRepository, index ports.SearchIndex, links ports.LinkIndex) {
	s.AddTool(healthTool(), healthHandler(repo))
	s.AddTool(discoverTool(), discoverHandler(repo, index))
	s.AddTool(staleTool(), staleHandler(repo))
	s.AddTool(brokenLinksTool(), brokenLinksHandler(repo))
	s.AddTool(orphansTool(), orphansHandler(repo))
	s.AddTool(backlinksTool(), backlinksHandler(links))
}

// --- vault_health ---

func healthTool() mcp.Tool {
	return mcp.NewTool("vault_health",
		mcp.WithDescription("Run every maintenance check (stale files, broken links, orphaned people pages, stale memories) and return the aggregate report as JSON."),
	)
}

func healthHandler(repo ports.VaultRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		report, err := commands.NewMaintenanceCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return toolJSON(report)
	}
}

// --- discover_collections ---

func discoverTool() mcp.Tool {
	return mcp.NewTool("discover_collections",
		mcp.WithDescription("Evaluate the vault against the collection catalog. With health_check=true, cross-reference the semantic search index and include suggestions."),
		mcp.WithBoolean("health_check",
			mcp.Description("Compare candidates against the search index instead of listing raw evaluations"),
		),
	)
}

func discoverHandler(repo ports.VaultRepository, index ports.SearchIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDiscoverCommand(repo, index)

		if req.GetBool("health_check", false) {
			hc, err := cmd.HealthCheck(ctx)
			if err != nil {
				return toolError(err)
			}
			return toolJSON(hc)
		}

		evals, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return toolJSON(evals)
	}
}

// --- stale_files ---

func staleTool() mcp.Tool {
	return mcp.NewTool("stale_files",
		mcp.WithDescription("List files under a vault directory older than a day threshold."),
		mcp.WithString("dir",
			mcp.Description("Vault-relative directory to scan (defaults to the inbox)"),
		),
		mcp.WithNumber("threshold_days",
			mcp.Description("Age in days beyond which a file counts as stale (defaults to 30)"),
		),
	)
}

func staleHandler(repo ports.VaultRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir := req.GetString("dir", domain.InboxDir)
		threshold := req.GetInt("threshold_days", domain.StaleInboxDays)

		stale, err := commands.NewStaleFilesCommand(repo, dir, threshold).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return toolJSON(stale)
	}
}

// --- broken_links ---

func brokenLinksTool() mcp.Tool {
	return mcp.NewTool("broken_links",
		mcp.WithDescription("Find wiki-links whose target matches no document in the vault."),
	)
}

func brokenLinksHandler(repo ports.VaultRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		broken, err := commands.NewBrokenLinksCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return toolJSON(broken)
	}
}

// --- orphaned_people ---

func orphansTool() mcp.Tool {
	return mcp.NewTool("orphaned_people",
		mcp.WithDescription("Find people pages referenced neither in the tasks document nor in recent meeting notes."),
	)
}

func orphansHandler(repo ports.VaultRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orphans, err := commands.NewOrphanedPagesCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return toolJSON(orphans)
	}
}

// --- backlinks ---

func backlinksTool() mcp.Tool {
	return mcp.NewTool("backlinks",
		mcp.WithDescription("List documents linking to a document name, from the persistent link index."),
		mcp.WithString("name",
			mcp.Description("Document name to find backlinks for (filename without extension)"),
			mcp.Required(),
		),
	)
}

func backlinksHandler(links ports.LinkIndex) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		if name == "" {
			return toolError(fmt.Errorf("name is required"))
		}
		if links == nil {
			return toolError(fmt.Errorf("link index not available"))
		}

		refs, err := links.Backlinks(name)
		if err != nil {
			return toolError(err)
		}
		if len(refs) == 0 {
			return mcp.NewToolResultText("No backlinks found."), nil
		}

		sources := make([]string, 0, len(refs))
		for _, ref := range refs {
			sources = append(sources, ref.SourcePath)
		}
		return toolJSON(sources)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func toolJSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
