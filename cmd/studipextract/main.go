package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	_ "time/tzdata"

	studipsync "github.com/N-Coder/studip-sync"
	"github.com/N-Coder/studip-sync/goquery"
	"github.com/N-Coder/studip-sync/sonic"
	"github.com/alecthomas/kong"
)

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
	// Stdin is read for the "-" input. Set before calling Run().
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("studipextract"),
		kong.Description("Extract downloads and seminars from saved Stud.IP pages as JSON"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'studipextract --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", studipsync.ErrorMessage(err))
		return err
	}
	cfg.Downloads.Policy = studipsync.Policy(cli.Policy)
	cfg.Seminars.Policy = studipsync.Policy(cli.Policy)

	deps.Config = cfg
	deps.BaseURL = cli.BaseURL
	deps.Concurrency = cli.Concurrency
	deps.Selector = goquery.NewEngine()
	deps.Encoder = sonic.NewEncoder()

	return kongCtx.Run(deps)
}
