package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/yakumd/yakumd"
	"github.com/yakumd/yakumd/gemini"
	yakugoquery "github.com/yakumd/yakumd/goquery"
	"github.com/yakumd/yakumd/htmltomarkdown"
	yakuhttp "github.com/yakumd/yakumd/http"
	yakumcp "github.com/yakumd/yakumd/mcp"
	"github.com/yakumd/yakumd/pipeline"
	"github.com/yakumd/yakumd/readability"
	"github.com/yakumd/yakumd/rod"
	yakuslog "github.com/yakumd/yakumd/slog"
	"github.com/yakumd/yakumd/trafilatura"
	"google.golang.org/genai"
)

const version = "0.2.0"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Pipeline overrides pipeline construction when set.
	// Used for end-to-end testing without network or credentials.
	Pipeline *pipeline.Pipeline
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("yakumd"),
		kong.Description("Translate web articles to Japanese Markdown."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'yakumd --help' to see available commands")
	}
	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	// Decorators log at info; keep them quiet unless asked.
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	needsPipeline := cmd == "url" || cmd == "text" || cmd == "mcp"
	if m.Pipeline != nil {
		deps.Pipeline = m.Pipeline
	} else if needsPipeline {
		p, closeFetcher, err := m.buildPipeline(ctx, cli, cmd, logger, stderr)
		if err != nil {
			return err
		}
		defer closeFetcher()
		deps.Pipeline = p
	}

	if cmd == "mcp" {
		deps.Server = yakumcp.NewServer(deps.Pipeline, version)
	}

	return kongCtx.Run(deps)
}

// buildPipeline wires concrete stage implementations from CLI flags.
// The API key is resolved here, at the boundary: explicit flag first,
// then the GEMINI_API_KEY environment variable. Absence of both is a
// configuration error before any network call is made.
func (m *Main) buildPipeline(ctx context.Context, cli *CLI, cmd string, logger *slog.Logger, stderr io.Writer) (*pipeline.Pipeline, func(), error) {
	apiKey := cli.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, nil, yakumd.Errorf(yakumd.ECONFIG, "Gemini API key not set: pass --api-key or set GEMINI_API_KEY")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, nil, yakumd.Errorf(yakumd.ECONFIG, "connecting to Gemini API: %v", err)
	}

	var fetcher yakumd.Fetcher
	if cmd == "url" && cli.URL.Render {
		f, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return nil, nil, err
		}
		fetcher = f
	} else {
		timeout := yakuhttp.DefaultFetchTimeout
		if cmd == "url" {
			timeout = cli.URL.Timeout
		}
		fetcher = yakuhttp.NewFetcher(yakuhttp.WithTimeout(timeout))
	}
	fetcher = yakuslog.NewLoggingFetcher(fetcher, logger)

	extractor, err := newExtractor(cli.Extractor)
	if err != nil {
		return nil, nil, err
	}

	p := &pipeline.Pipeline{
		Fetcher:    fetcher,
		Extractor:  extractor,
		Converter:  htmltomarkdown.NewConverter(),
		Translator: yakuslog.NewLoggingTranslator(gemini.NewTranslator(client, gemini.WithModel(cli.Model)), logger),
	}

	return p, func() { _ = fetcher.Close() }, nil
}

// newExtractor selects the extraction backend. Kong's enum validation
// guards the flag, so the default branch only trips on wiring bugs.
func newExtractor(name string) (yakumd.Extractor, error) {
	switch name {
	case "goquery":
		return yakugoquery.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	default:
		return nil, yakumd.Errorf(yakumd.EINVALID, "unknown extractor %q", name)
	}
}
