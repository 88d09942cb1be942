package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/newsdesk"
	main "github.com/fwojciec/newsdesk/cmd/newsdesk"
	"github.com/fwojciec/newsdesk/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMain(env map[string]string) *main.Main {
	m := main.NewMain()
	m.EnvFile = ""
	m.Getenv = envMap(env)
	return m
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	t.Run("shows commands for --help", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newTestMain(nil).Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "serve")
		assert.Contains(t, out, "analyze")
		assert.Contains(t, out, "Usage:")
	})

	t.Run("returns error with no arguments", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newTestMain(nil).Run(context.Background(), nil, stdout, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "Usage:")
		assert.False(t, main.IsReported(err))
	})
}

func TestMain_Run_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("prints the response as JSON", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(nil)
		m.Summarizer = &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, req *newsdesk.Request) (*newsdesk.Response, error) {
				assert.Equal(t, newsdesk.InputURL, req.Type)
				assert.Equal(t, "https://example.com/a", req.Content)
				return newsdesk.Assemble(&newsdesk.Article{Title: "Headline"}, nil, nil), nil
			},
		}
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"analyze", "--url", "https://example.com/a"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		var resp newsdesk.Response
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
		assert.Equal(t, "Headline", resp.Title)
	})

	t.Run("prints error message on failure", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(nil)
		m.Summarizer = &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, req *newsdesk.Request) (*newsdesk.Response, error) {
				return nil, newsdesk.Errorf(newsdesk.EEXTRACT, "no text content found")
			},
		}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"analyze", "--url", "https://example.com/a"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Equal(t, "error: no text content found\n", stderr.String())
		assert.True(t, main.IsReported(err))
		assert.Equal(t, newsdesk.EEXTRACT, newsdesk.ErrorCode(err))
	})

	t.Run("runs the default pipeline for text input", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(map[string]string{"NEWSDESK_LOG_LEVEL": "error"})
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"analyze", "--text", "اہم خبر"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		var resp newsdesk.Response
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
		assert.Equal(t, newsdesk.PlaceholderTitle, resp.Title)
		assert.Empty(t, resp.Sources)
		assert.Len(t, resp.Captions, 8)
		assert.Len(t, resp.Questions, 8)
	})

	t.Run("rejects invalid configuration", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(map[string]string{"NEWSDESK_GENERATOR": "openai"})
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"analyze", "--text", "x"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Equal(t, 1, strings.Count(stderr.String(), "OPENAI_API_KEY"))
		assert.True(t, main.IsReported(err))
		assert.Equal(t, newsdesk.EINVALID, newsdesk.ErrorCode(err))
	})

	t.Run("requires url or text", func(t *testing.T) {
		t.Parallel()

		err := newTestMain(nil).Run(context.Background(), []string{"analyze"}, &bytes.Buffer{}, &bytes.Buffer{})

		assert.Error(t, err)
	})
}

func TestMain_Run_Serve(t *testing.T) {
	t.Parallel()

	t.Run("shuts down when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(map[string]string{"NEWSDESK_LOG_LEVEL": "error"})
		m.Summarizer = &mock.Summarizer{}

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- m.Run(ctx, []string{"serve", "--addr", "127.0.0.1:0"}, &bytes.Buffer{}, &bytes.Buffer{})
		}()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("serve did not shut down")
		}
	})
}
