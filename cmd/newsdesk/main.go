package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newsdesk"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !IsReported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// reportedError marks an error whose message was already written to stderr.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// reported writes the user-facing message of err to w and marks err so
// main does not print it again.
func reported(w io.Writer, err error) error {
	fmt.Fprintf(w, "error: %s\n", newsdesk.ErrorMessage(err))
	return &reportedError{err: err}
}

// IsReported reports whether err was already written to stderr by Run.
func IsReported(err error) bool {
	var e *reportedError
	return errors.As(err, &e)
}

// Main represents the program.
type Main struct {
	// Dotenv file loaded before configuration. Missing files are ignored.
	EnvFile string

	// Environment lookup used for configuration overrides.
	Getenv func(string) string

	// Summarizer for end-to-end testing. Built from configuration when nil.
	Summarizer newsdesk.Summarizer

	fetcher newsdesk.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile: ".env",
		Getenv:  os.Getenv,
	}
}

// Close releases resources opened by Run.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
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
		kong.Name("newsdesk"),
		kong.Description("Turn news articles into lower-thirds, panel questions and editorial notes"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsdesk --help' to see available commands")
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

	if m.EnvFile != "" {
		if err := godotenv.Load(m.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", m.EnvFile, err)
		}
	}

	cfg, err := LoadConfig(cli.Config, m.Getenv)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return reported(stderr, err)
	}

	logger, err := NewLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}

	if m.Summarizer == nil {
		if err := m.open(ctx, cfg, logger); err != nil {
			return err
		}
		defer m.Close()
	}

	deps.Config = cfg
	deps.Logger = logger
	deps.Summarizer = m.Summarizer

	return kongCtx.Run(deps)
}
