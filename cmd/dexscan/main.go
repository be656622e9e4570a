package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"dexscan/internal/adapters/editor"
	"dexscan/internal/adapters/filesystem"
	"dexscan/internal/adapters/qmd"
	"dexscan/internal/adapters/tui"
	"dexscan/internal/config"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	flag.Parse()

	// Initialize adapters
	repo, err := filesystem.NewRepository(*vaultFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	editorOpener := editor.NewOpener()

	// Create and run TUI app
	app := tui.NewApp(repo, qmd.NewClient(), editorOpener)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
