package main

import (
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"recall/internal/adapters/filesystem"
	"recall/internal/adapters/markdown"
	mcpadapter "recall/internal/adapters/mcp"
	"recall/internal/config"
)

func main() {
	rootFlag := flag.String("root", "", "path to the note store (defaults to $RECALL_DIR)")
	flag.Parse()

	root := *rootFlag
	if root == "" {
		cfg, err := config.NewLoader().Load()
		if err != nil {
			log.Fatalf("recall-mcp: %v", err)
		}
		root = cfg.Root
	}

	store := filesystem.NewStore(root)

	mcpServer := server.NewMCPServer(
		"recall-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpadapter.RegisterReadTools(mcpServer, store, markdown.NewTitleExtractor())
	mcpadapter.RegisterWriteTools(mcpServer, store)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("recall-mcp: %v", err)
	}
}
