package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/analyze"
	"github.com/fwojciec/newsdesk/gemini"
	"github.com/fwojciec/newsdesk/goquery"
	ndhttp "github.com/fwojciec/newsdesk/http"
	ndopenai "github.com/fwojciec/newsdesk/openai"
	"github.com/fwojciec/newsdesk/readability"
	"github.com/fwojciec/newsdesk/rod"
	ndslog "github.com/fwojciec/newsdesk/slog"
	"github.com/fwojciec/newsdesk/trafilatura"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// open builds the summarizer pipeline described by cfg.
func (m *Main) open(ctx context.Context, cfg *Config, logger *slog.Logger) error {
	fetcher, err := newFetcher(cfg.Fetch)
	if err != nil {
		return err
	}
	m.fetcher = fetcher

	generator, err := newGenerator(ctx, cfg.Generator, logger)
	if err != nil {
		_ = m.Close()
		return err
	}

	resolver := analyze.NewResolver(
		ndslog.NewLoggingFetcher(fetcher, logger),
		ndslog.NewLoggingExtractor(newExtractor(cfg.Extract), logger),
	)
	m.Summarizer = analyze.NewService(resolver, ndslog.NewLoggingGenerator(generator, logger))
	return nil
}

func newFetcher(cfg FetchConfig) (newsdesk.Fetcher, error) {
	if cfg.Mode == FetchBrowser {
		opts := []rod.Option{rod.WithFetchTimeout(cfg.Timeout)}
		if cfg.UserAgent != "" {
			opts = append(opts, rod.WithUserAgent(cfg.UserAgent))
		}
		if cfg.MaxPages > 0 {
			opts = append(opts, rod.WithMaxPages(cfg.MaxPages))
		}
		fetcher, err := rod.NewFetcher(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		return fetcher, nil
	}

	opts := []ndhttp.Option{ndhttp.WithTimeout(cfg.Timeout)}
	if cfg.UserAgent != "" {
		opts = append(opts, ndhttp.WithUserAgent(cfg.UserAgent))
	}
	return ndhttp.NewFetcher(opts...), nil
}

func newExtractor(cfg ExtractConfig) newsdesk.Extractor {
	switch cfg.Mode {
	case ExtractReadability:
		return readability.NewExtractor()
	case ExtractTrafilatura:
		return trafilatura.NewExtractor()
	}
	if len(cfg.Selectors) > 0 {
		return goquery.NewExtractor(goquery.WithSelectors(cfg.Selectors...))
	}
	return goquery.NewExtractor()
}

func newGenerator(ctx context.Context, cfg GeneratorConfig, logger *slog.Logger) (newsdesk.Generator, error) {
	fallback := analyze.NewConstantGenerator()

	var completer newsdesk.Completer
	switch cfg.Mode {
	case GeneratorOpenAI:
		config := openai.DefaultConfig(cfg.OpenAIKey)
		if cfg.OpenAIBaseURL != "" {
			config.BaseURL = cfg.OpenAIBaseURL
		}
		completer = ndopenai.NewCompleter(openai.NewClientWithConfig(config), cfg.Model)
	case GeneratorGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		completer = gemini.NewCompleter(client, cfg.Model)
	default:
		return fallback, nil
	}

	return analyze.NewCompletionGenerator(ndslog.NewLoggingCompleter(completer, logger), fallback, logger), nil
}
