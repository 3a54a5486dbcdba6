package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"md-render/pkg/config"
	"md-render/pkg/frontmatter"
	"md-render/pkg/log"
	"md-render/pkg/render"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "mcp-server" {
		runMcpServer(os.Args[2:])
		return
	}
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// jsonDocument is the structured output emitted with -json.
type jsonDocument struct {
	HTML     string           `json:"html"`
	Headings []render.Heading `json:"headings"`
	Meta     map[string]any   `json:"meta,omitempty"`
	Notes    []string         `json:"notes,omitempty"`
}

// run is the testable CLI entry point. With no file arguments it behaves
// as a filter: Markdown on stdin, HTML (or the -json document) on stdout.
// File arguments switch to batch mode, rendering each file concurrently
// and writing a sibling output file.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("md-render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "Path to YAML config file (optional)")
	jsonOut := fs.Bool("json", false, "Emit a JSON document with HTML and the heading index")
	stripFM := fs.Bool("frontmatter", false, "Strip a leading YAML front matter block (included as 'meta' with -json)")
	logLevel := fs.String("loglevel", "", "Log level (debug, info, warn, error, fatal)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, `Usage: md-render [options] [file ...]

Render Markdown to HTML with a Unicode-aware slugged heading index.
Reads stdin and writes stdout when no files are given; with file
arguments, writes a sibling output file per input.

Subcommands:
  mcp-server    Expose the renderer as MCP tools (see 'md-render mcp-server -h')

Options:
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *stripFM {
		cfg.StripFrontMatter = true
	}

	logger := log.New(cfg.LogLevel, stderr)

	warnings, err := cfg.Validate()
	if err != nil {
		logger.Errorf("Configuration error: %v", err)
		return 1
	}
	for _, w := range warnings {
		logger.Warn(w)
	}

	if fs.NArg() > 0 {
		return runBatch(fs.Args(), cfg, *jsonOut, logger)
	}
	return runFilter(stdin, stdout, cfg, *jsonOut, logger)
}

func runFilter(stdin io.Reader, stdout io.Writer, cfg *config.AppConfig, jsonOut bool, logger *logrus.Logger) int {
	source, err := io.ReadAll(stdin)
	if err != nil {
		logger.Errorf("Reading stdin: %v", err)
		return 1
	}

	out, err := renderDocument(source, cfg, jsonOut)
	if err != nil {
		logger.Errorf("Render failed: %v", err)
		return 1
	}
	if _, err := io.WriteString(stdout, out); err != nil {
		logger.Errorf("Writing output: %v", err)
		return 1
	}
	return 0
}

func runBatch(paths []string, cfg *config.AppConfig, jsonOut bool, logger *logrus.Logger) int {
	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)

	for _, path := range paths {
		g.Go(func() error {
			source, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read '%s': %w", path, err)
			}
			out, err := renderDocument(source, cfg, jsonOut)
			if err != nil {
				return fmt.Errorf("render '%s': %w", path, err)
			}
			outPath := outputPath(path, jsonOut)
			if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
				return fmt.Errorf("write '%s': %w", outPath, err)
			}
			logger.WithFields(logrus.Fields{
				"input":  path,
				"output": outPath,
			}).Info("Rendered file")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error(err)
		return 1
	}
	return 0
}

func renderDocument(source []byte, cfg *config.AppConfig, jsonOut bool) (string, error) {
	var meta map[string]any
	if cfg.StripFrontMatter {
		var err error
		meta, source, err = frontmatter.Extract(source)
		if err != nil {
			return "", err
		}
	}

	opts := []render.Option{
		render.WithMaxInputBytes(cfg.MaxInputBytes),
		render.WithFallbackSlug(cfg.FallbackSlug),
	}
	if cfg.Diagnostics {
		opts = append(opts, render.WithDiagnostics())
	}

	res, err := render.Render(source, opts...)
	if err != nil {
		return "", err
	}

	if !jsonOut {
		return res.HTML, nil
	}

	doc := jsonDocument{
		HTML:     res.HTML,
		Headings: res.Headings,
		Meta:     meta,
		Notes:    res.Notes,
	}
	if doc.Headings == nil {
		doc.Headings = []render.Heading{}
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}

func outputPath(inPath string, jsonOut bool) string {
	ext := ".html"
	if jsonOut {
		ext = ".json"
	}
	base := strings.TrimSuffix(inPath, ".md")
	base = strings.TrimSuffix(base, ".markdown")
	return base + ext
}
