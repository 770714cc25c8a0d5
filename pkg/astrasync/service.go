// Package astrasync exposes the AstraSync backend endpoints on top of httpclient.Client.
package astrasync

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/astrasync/astrasync-client/internal/domain"
	"github.com/astrasync/astrasync-client/pkg/httpclient"
)

const (
	PathHome          = "/"
	PathHealth        = "/health"
	PathProfile       = "/profile"
	PathSubmitData    = "/submit_data"
	PathScore         = "/score"
	PathHistory       = "/history/"
	PathSyncGoogleFit = "/sync/google-fit"
)

var (
	// ErrDateRequired mirrors the backend rule that submitted entries carry a date.
	ErrDateRequired = errors.New("date required")
	// ErrUnexpectedShape is returned when a response decodes to the wrong JSON type.
	ErrUnexpectedShape = errors.New("unexpected response shape")
)

// Service calls backend endpoints. Errors from the underlying client,
// including *httpclient.RequestError, are returned unchanged.
type Service struct {
	client httpclient.Client
}

// NewService wraps client.
func NewService(client httpclient.Client) *Service {
	return &Service{client: client}
}

// Home returns the backend banner.
func (s *Service) Home(ctx context.Context) (any, error) {
	return s.client.Get(ctx, PathHome)
}

// Health reports the backend "ok" flag.
func (s *Service) Health(ctx context.Context) (bool, error) {
	res, err := s.client.Get(ctx, PathHealth)
	if err != nil {
		return false, err
	}
	obj, err := asObject(res)
	if err != nil {
		return false, err
	}
	ok, isBool := obj["ok"].(bool)
	if !isBool {
		return false, fmt.Errorf("%w: health ok flag missing", ErrUnexpectedShape)
	}
	return ok, nil
}

// SaveProfile stores profile for its user.
func (s *Service) SaveProfile(ctx context.Context, profile domain.Profile) (any, error) {
	return s.client.Post(ctx, PathProfile, profile.Payload())
}

// SubmitData stores a dated entry.
func (s *Service) SubmitData(ctx context.Context, entry domain.Entry) (any, error) {
	if strings.TrimSpace(entry.Date) == "" {
		return nil, ErrDateRequired
	}
	return s.client.Post(ctx, PathSubmitData, entry.Payload())
}

// Score asks the backend to score entry against the user's profile and recent logs.
func (s *Service) Score(ctx context.Context, entry domain.Entry) (any, error) {
	return s.client.Post(ctx, PathScore, entry.Payload())
}

// History returns the stored logs for userID, newest first as the backend orders them.
func (s *Service) History(ctx context.Context, userID string) ([]any, error) {
	if strings.TrimSpace(userID) == "" {
		userID = domain.DefaultUserID
	}
	res, err := s.client.Get(ctx, PathHistory+url.PathEscape(userID))
	if err != nil {
		return nil, err
	}
	obj, err := asObject(res)
	if err != nil {
		return nil, err
	}
	raw, present := obj["logs"]
	if !present || raw == nil {
		return []any{}, nil
	}
	logs, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: logs is %T", ErrUnexpectedShape, raw)
	}
	return logs, nil
}

// SyncGoogleFit triggers a Google Fit sync and returns the aggregated data.
func (s *Service) SyncGoogleFit(ctx context.Context) (any, error) {
	return s.client.Post(ctx, PathSyncGoogleFit, map[string]any{})
}

func asObject(v any) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %T", ErrUnexpectedShape, v)
	}
	return obj, nil
}
