package main

import (
	"encoding/json"

	"github.com/fwojciec/newsdesk"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	req := &newsdesk.Request{Type: newsdesk.InputText, Content: c.Text}
	if c.URL != "" {
		req = &newsdesk.Request{Type: newsdesk.InputURL, Content: c.URL}
	}

	resp, err := deps.Summarizer.Summarize(deps.Ctx, req)
	if err != nil {
		return reported(deps.Stderr, err)
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
