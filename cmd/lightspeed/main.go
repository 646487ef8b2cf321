// Lightspeed: Notes & Tasks MCP Server
//
// An MCP server that exposes a notes/tasks productivity backend to AI
// agents: CRUD over notes, tasks, and categories plus productivity
// analytics (dashboard, duplicate detection, deadline reports, content
// insights).
//
// Usage:
//
//	lightspeed serve    # Start MCP server (stdio transport)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/TechWithTy/lightspeed-mcp/internal/server"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("lightspeed v%s\n", mcpserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	s, err := mcpserver.New()
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	// Graceful shutdown on interrupt.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	_ = ctx // stdio server manages its own lifecycle

	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `lightspeed - Notes & Tasks MCP Server

Usage:
  lightspeed serve      Start the MCP server (stdio transport)
  lightspeed version    Print the version
  lightspeed help       Show this help

Configuration (environment):
  LIGHTSPEED_BACKEND_URL        Backend base URL
  LIGHTSPEED_REQUEST_TIMEOUT    Per-request timeout (default 30s)
  LIGHTSPEED_MAX_ATTEMPTS       Retry budget for transient failures (default 3)
  LIGHTSPEED_FETCH_LIMIT        Page size for analytics fetches (default 1000)
  LIGHTSPEED_LOGIN_EMAIL        Fallback login email
  LIGHTSPEED_LOGIN_PASSWORD     Fallback login password
  LIGHTSPEED_LOG_LEVEL          debug|info|warn|error (default info)
`)
}
