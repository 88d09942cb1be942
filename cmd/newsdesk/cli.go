package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/newsdesk"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Config     *Config
	Logger     *slog.Logger
	Summarizer newsdesk.Summarizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" help:"Path to YAML config file"`

	Serve   ServeCmd   `cmd:"" help:"Run the HTTP API server"`
	Analyze AnalyzeCmd `cmd:"" help:"Analyze one article and print the JSON result"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides config)"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL  string `xor:"input" required:"" help:"News article URL to fetch"`
	Text string `xor:"input" required:"" help:"News text to analyze"`
}
