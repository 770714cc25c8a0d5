package httpclient

import "context"

// Client performs JSON round trips against the backend. Both verbs return the
// parsed JSON body (map[string]any, []any, or a scalar) on success.
type Client interface {
	Get(ctx context.Context, path string) (any, error)
	Post(ctx context.Context, path string, payload any) (any, error)
}
