// Package mcp exposes the pipeline to agent hosts over the Model
// Context Protocol. Two tools are served: one runs the full
// URL-to-Japanese-Markdown pipeline, the other derives a download
// filename from a URL.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/yakumd/yakumd"
	"github.com/yakumd/yakumd/pipeline"
)

const serverName = "yakumd"

// ConvertURLInput is the input for the convert_url_to_jp_markdown tool.
type ConvertURLInput struct {
	URL string `json:"url" jsonschema:"URL of the web page to translate"`
}

// FilenameInput is the input for the get_markdown_filename tool.
type FilenameInput struct {
	URL string `json:"url" jsonschema:"URL to derive a Markdown filename from"`
}

// Server wraps an MCP server with the yakumd tools registered.
type Server struct {
	server   *mcp.Server
	pipeline *pipeline.Pipeline
}

// NewServer creates a new Server serving the given pipeline.
func NewServer(p *pipeline.Pipeline, version string) *Server {
	s := &Server{
		server:   mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil),
		pipeline: p,
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "convert_url_to_jp_markdown",
		Description: "Fetch a web page, extract the primary content, convert it to " +
			"Markdown and translate the prose to Japanese, preserving the Markdown structure.",
	}, s.convertURL)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_markdown_filename",
		Description: "Build a filesystem-safe Markdown filename from a URL's host and path.",
	}, s.filename)

	return s
}

// Run serves MCP over stdio until the context is cancelled or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Connect attaches the server to a transport. Used by tests and by
// hosts embedding the server in-process.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}

func (s *Server) convertURL(ctx context.Context, req *mcp.CallToolRequest, in ConvertURLInput) (*mcp.CallToolResult, any, error) {
	markdown, err := s.pipeline.RunFromURL(ctx, in.URL)
	if err != nil {
		return nil, nil, err
	}
	return textResult(markdown), nil, nil
}

func (s *Server) filename(ctx context.Context, req *mcp.CallToolRequest, in FilenameInput) (*mcp.CallToolResult, any, error) {
	return textResult(yakumd.DeriveFilename(in.URL)), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
