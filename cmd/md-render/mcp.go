package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"md-render/pkg/config"
	"md-render/pkg/log"
	"md-render/pkg/mcp"
)

// runMcpServer handles the mcp-server subcommand
func runMcpServer(args []string) {
	fs := flag.NewFlagSet("mcp-server", flag.ExitOnError)
	configFile := fs.String("config", "", "Path to YAML config file (optional)")
	transport := fs.String("transport", "stdio", "Transport type (stdio, sse)")
	port := fs.Int("port", 8080, "HTTP port (for sse transport)")
	logLevel := fs.String("loglevel", "info", "Log level (debug, info, warn, error)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: md-render mcp-server [options]

Start an MCP (Model Context Protocol) server exposing the renderer.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Start with stdio transport
  md-render mcp-server

  # Start with SSE transport on port 8080
  md-render mcp-server -transport sse -port 8080

Available MCP Tools:
  render_markdown   Render Markdown to HTML plus a slugged heading index
  extract_headings  Return only the heading index for a document
  import_html       Convert HTML to Markdown for rendering
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	os.Exit(doMcpServer(*configFile, *transport, *port, *logLevel, os.Stderr))
}

// doMcpServer is the testable implementation of the MCP server
func doMcpServer(configPath, transport string, port int, logLevel string, stderr io.Writer) int {
	// MCP stdio transport owns stdout; all logging goes to stderr.
	logger := log.New(logLevel, stderr)

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	warnings, err := cfg.Validate()
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}
	for _, w := range warnings {
		logger.Warn(w)
	}

	server, err := mcp.NewServer(&mcp.ServerConfig{
		AppConfig: cfg,
		Transport: transport,
		Port:      port,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error creating MCP server: %v\n", err)
		return 1
	}

	if err := server.Run(); err != nil {
		fmt.Fprintf(stderr, "MCP server error: %v\n", err)
		return 1
	}
	return 0
}
