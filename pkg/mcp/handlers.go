package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"md-render/pkg/frontmatter"
	"md-render/pkg/render"
)

// requestLog returns a logger entry carrying a correlation id so tool
// invocations can be traced through stderr output.
func (s *Server) requestLog(tool string) *logrus.Entry {
	return s.log.WithFields(logrus.Fields{
		"tool":       tool,
		"request_id": uuid.New().String(),
	})
}

func (s *Server) renderOptions() []render.Option {
	opts := []render.Option{
		render.WithMaxInputBytes(s.cfg.AppConfig.MaxInputBytes),
		render.WithFallbackSlug(s.cfg.AppConfig.FallbackSlug),
	}
	if s.cfg.AppConfig.Diagnostics {
		opts = append(opts, render.WithDiagnostics())
	}
	return opts
}

// handleRenderMarkdown handles the render_markdown tool
func (s *Server) handleRenderMarkdown(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logEntry := s.requestLog("render_markdown")

	source := request.GetString("markdown", "")
	if source == "" {
		return mcp.NewToolResultError("markdown parameter is required"), nil
	}

	body := []byte(source)
	var meta map[string]any
	if request.GetBool("strip_front_matter", s.cfg.AppConfig.StripFrontMatter) {
		var err error
		meta, body, err = frontmatter.Extract(body)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("front matter error: %v", err)), nil
		}
	}

	startTime := time.Now()
	res, err := render.Render(body, s.renderOptions()...)
	if err != nil {
		logEntry.WithError(err).Warn("Render failed")
		return mcp.NewToolResultError(fmt.Sprintf("render error: %v", err)), nil
	}
	logEntry.WithFields(logrus.Fields{
		"input_bytes": len(body),
		"headings":    len(res.Headings),
		"duration":    time.Since(startTime).String(),
	}).Info("Rendered document")

	result := map[string]interface{}{
		"html":     res.HTML,
		"headings": headingList(res),
	}
	if meta != nil {
		result["meta"] = meta
	}
	if len(res.Notes) > 0 {
		result["notes"] = res.Notes
	}

	return mcp.NewToolResultText(formatJSON(result)), nil
}

// handleExtractHeadings handles the extract_headings tool
func (s *Server) handleExtractHeadings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logEntry := s.requestLog("extract_headings")

	source := request.GetString("markdown", "")
	if source == "" {
		return mcp.NewToolResultError("markdown parameter is required"), nil
	}

	res, err := render.Render([]byte(source), s.renderOptions()...)
	if err != nil {
		logEntry.WithError(err).Warn("Render failed")
		return mcp.NewToolResultError(fmt.Sprintf("render error: %v", err)), nil
	}
	logEntry.WithField("headings", len(res.Headings)).Info("Extracted headings")

	result := map[string]interface{}{
		"headings": headingList(res),
		"total":    len(res.Headings),
	}

	return mcp.NewToolResultText(formatJSON(result)), nil
}

// handleImportHTML handles the import_html tool
func (s *Server) handleImportHTML(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logEntry := s.requestLog("import_html")

	htmlInput := request.GetString("html", "")
	if htmlInput == "" {
		return mcp.NewToolResultError("html parameter is required"), nil
	}
	if max := s.cfg.AppConfig.MaxInputBytes; max > 0 && int64(len(htmlInput)) > max {
		return mcp.NewToolResultError(fmt.Sprintf("html input exceeds size limit (%d bytes)", max)), nil
	}

	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(htmlInput)
	if err != nil {
		logEntry.WithError(err).Warn("HTML conversion failed")
		return mcp.NewToolResultError(fmt.Sprintf("conversion error: %v", err)), nil
	}
	logEntry.WithFields(logrus.Fields{
		"input_bytes":  len(htmlInput),
		"output_bytes": len(markdown),
	}).Info("Converted HTML to markdown")

	result := map[string]interface{}{
		"markdown": markdown,
	}

	return mcp.NewToolResultText(formatJSON(result)), nil
}

func headingList(res *render.Result) []map[string]interface{} {
	headings := make([]map[string]interface{}, 0, len(res.Headings))
	for _, h := range res.Headings {
		headings = append(headings, map[string]interface{}{
			"level": h.Level,
			"text":  h.Text,
			"slug":  h.Slug,
		})
	}
	return headings
}

func formatJSON(data map[string]interface{}) string {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("{\"error\": %q}", err.Error())
	}
	return string(b)
}
