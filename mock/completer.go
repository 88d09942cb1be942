package mock

import (
	"context"

	"github.com/fwojciec/newsdesk"
)

var _ newsdesk.Completer = (*Completer)(nil)

// Completer is a mock implementation of newsdesk.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, prompt newsdesk.Prompt) (string, error)
}

func (c *Completer) Complete(ctx context.Context, prompt newsdesk.Prompt) (string, error) {
	return c.CompleteFn(ctx, prompt)
}
