// Package mcp exposes the renderer over the Model Context Protocol so AI
// tooling can embed it without linking Go code.
package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"md-render/pkg/config"
)

const (
	serverName    = "md-render"
	serverVersion = "1.0.0"
)

// ServerConfig holds configuration for the MCP server
type ServerConfig struct {
	AppConfig *config.AppConfig
	Transport string // "stdio" or "sse"
	Port      int
	Logger    *logrus.Logger
}

// Server wraps the MCP server with the render tools
type Server struct {
	mcpServer *server.MCPServer
	cfg       *ServerConfig
	log       *logrus.Entry
}

// NewServer creates a new MCP server instance
func NewServer(cfg *ServerConfig) (*Server, error) {
	if cfg.AppConfig == nil {
		return nil, fmt.Errorf("AppConfig is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}

	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithLogging(),
	)

	s := &Server{
		mcpServer: mcpServer,
		cfg:       cfg,
		log:       cfg.Logger.WithField("component", "mcp"),
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	// render_markdown - Markdown in, HTML plus heading index out
	renderTool := mcp.NewTool("render_markdown",
		mcp.WithDescription("Render a Markdown document to HTML and return it together with a slugged heading index (levels 1-3)"),
		mcp.WithString("markdown",
			mcp.Required(),
			mcp.Description("The Markdown source to render"),
		),
		mcp.WithBoolean("strip_front_matter",
			mcp.Description("Strip and return a leading YAML front matter block"),
		),
	)
	s.mcpServer.AddTool(renderTool, s.handleRenderMarkdown)

	// extract_headings - Heading index only
	headingsTool := mcp.NewTool("extract_headings",
		mcp.WithDescription("Extract the heading index (level, text, slug) from a Markdown document without returning HTML"),
		mcp.WithString("markdown",
			mcp.Required(),
			mcp.Description("The Markdown source to analyze"),
		),
	)
	s.mcpServer.AddTool(headingsTool, s.handleExtractHeadings)

	// import_html - Bring HTML sources into the pipeline as Markdown
	importTool := mcp.NewTool("import_html",
		mcp.WithDescription("Convert an HTML fragment to Markdown so it can be rendered and indexed by render_markdown"),
		mcp.WithString("html",
			mcp.Required(),
			mcp.Description("The HTML fragment to convert"),
		),
	)
	s.mcpServer.AddTool(importTool, s.handleImportHTML)

	s.log.Infof("Registered %d MCP tools", 3)
}

// Run starts the MCP server with the configured transport
func (s *Server) Run() error {
	switch s.cfg.Transport {
	case "stdio":
		s.log.Info("Starting MCP server with stdio transport")
		return server.ServeStdio(s.mcpServer)
	case "sse":
		addr := fmt.Sprintf(":%d", s.cfg.Port)
		s.log.Infof("Starting MCP server with SSE transport on %s", addr)
		sseServer := server.NewSSEServer(s.mcpServer)
		return sseServer.Start(addr)
	default:
		return fmt.Errorf("unknown transport: %s (supported: stdio, sse)", s.cfg.Transport)
	}
}
