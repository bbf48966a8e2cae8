package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"recall/internal/adapters/editor"
	"recall/internal/adapters/filesystem"
	"recall/internal/adapters/markdown"
	"recall/internal/adapters/tui"
	"recall/internal/config"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := filesystem.NewStore(cfg.Root)
	app := tui.NewApp(store, markdown.NewTitleExtractor(), editor.NewOpener(cfg.Editor))

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
