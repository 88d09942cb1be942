package mock

import (
	"context"

	"github.com/fwojciec/newsdesk"
)

var _ newsdesk.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of newsdesk.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, req *newsdesk.Request) (*newsdesk.Resolved, error)
}

func (r *Resolver) Resolve(ctx context.Context, req *newsdesk.Request) (*newsdesk.Resolved, error) {
	return r.ResolveFn(ctx, req)
}
