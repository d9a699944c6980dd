package main

import (
	"context"
	"io"
	"time"

	"github.com/yakumd/yakumd/mcp"
	"github.com/yakumd/yakumd/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Pipeline *pipeline.Pipeline
	Server   *mcp.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	APIKey    string `name:"api-key" help:"Gemini API key (defaults to the GEMINI_API_KEY environment variable)"`
	Model     string `default:"gemini-2.0-flash" help:"Gemini model used for translation"`
	Extractor string `default:"goquery" enum:"goquery,trafilatura,readability" help:"Content extraction backend"`
	Verbose   bool   `short:"v" help:"Enable debug logging"`

	URL      URLCmd      `cmd:"" help:"Translate a web page to Japanese Markdown"`
	Text     TextCmd     `cmd:"" help:"Translate a Markdown or text file to Japanese"`
	Filename FilenameCmd `cmd:"" help:"Print the Markdown filename derived from a URL"`
	MCP      MCPCmd      `cmd:"" name:"mcp" help:"Serve the pipeline as MCP tools over stdio"`
}

// URLCmd is the "url" subcommand.
type URLCmd struct {
	URL     string        `arg:"" help:"Web page URL"`
	Output  string        `short:"o" help:"Output file path (default: derived from the URL)"`
	Render  bool          `help:"Render the page in a headless browser before extraction"`
	Timeout time.Duration `default:"30s" help:"HTTP fetch timeout"`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	Path   string `arg:"" help:"Input Markdown or text file"`
	Output string `short:"o" help:"Output file path (default: stdout)"`
}

// FilenameCmd is the "filename" subcommand.
type FilenameCmd struct {
	URL string `arg:"" help:"URL to derive a filename from"`
}

// MCPCmd is the "mcp" subcommand.
type MCPCmd struct{}
