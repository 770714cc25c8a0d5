package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/astrasync/astrasync-client/internal/config"
	"github.com/astrasync/astrasync-client/internal/domain"
	"github.com/astrasync/astrasync-client/internal/logger"
	"github.com/astrasync/astrasync-client/pkg/astrasync"
	"github.com/astrasync/astrasync-client/pkg/httpclient"
	"github.com/go-resty/resty/v2"
	"gopkg.in/yaml.v3"
)

// App wires config, logging and the backend client, and renders results.
type App struct {
	cfg     *config.Config
	client  httpclient.Client
	service *astrasync.Service
	log     logger.Logger
	out     io.Writer
}

// New builds the runtime. restyLog receives resty's own warnings and debug
// output and may be nil.
func New(cfg *config.Config, log logger.Logger, restyLog resty.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	client := httpclient.NewRestyClient(httpclient.Options{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.RequestTimeout,
		Debug:   cfg.HTTPDebug,
		Logger:  restyLog,
	})
	if log == nil {
		log = logger.NopLogger{}
	}
	log.InfoObj("client initialized", "client_config", map[string]any{
		"base_url":        client.BaseURL(),
		"timeout_seconds": int(cfg.RequestTimeout.Seconds()),
		"output_format":   cfg.OutputFormat,
	})
	return &App{
		cfg:     cfg,
		client:  client,
		service: astrasync.NewService(client),
		log:     log,
		out:     os.Stdout,
	}, nil
}

// SetOutput redirects rendered results.
func (a *App) SetOutput(w io.Writer) { a.out = w }

// Get performs a raw GET and renders the result.
func (a *App) Get(ctx context.Context, path string) error {
	return a.exec(ctx, "GET "+path, func(ctx context.Context) (any, error) {
		return a.client.Get(ctx, path)
	})
}

// Post performs a raw POST and renders the result.
func (a *App) Post(ctx context.Context, path string, payload any) error {
	return a.exec(ctx, "POST "+path, func(ctx context.Context) (any, error) {
		return a.client.Post(ctx, path, payload)
	})
}

// Home renders the backend banner.
func (a *App) Home(ctx context.Context) error {
	return a.exec(ctx, "home", a.service.Home)
}

// Health renders the backend health flag.
func (a *App) Health(ctx context.Context) error {
	return a.exec(ctx, "health", func(ctx context.Context) (any, error) {
		ok, err := a.service.Health(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{"ok": ok}, nil
	})
}

// History renders the stored logs for userID, or the configured user when empty.
func (a *App) History(ctx context.Context, userID string) error {
	if userID == "" {
		userID = a.cfg.UserID
	}
	return a.exec(ctx, "history", func(ctx context.Context) (any, error) {
		return a.service.History(ctx, userID)
	})
}

// Score scores entry.
func (a *App) Score(ctx context.Context, entry domain.Entry) error {
	entry.UserID = a.userOr(entry.UserID)
	return a.exec(ctx, "score", func(ctx context.Context) (any, error) {
		return a.service.Score(ctx, entry)
	})
}

// SubmitData stores entry.
func (a *App) SubmitData(ctx context.Context, entry domain.Entry) error {
	entry.UserID = a.userOr(entry.UserID)
	return a.exec(ctx, "submit_data", func(ctx context.Context) (any, error) {
		return a.service.SubmitData(ctx, entry)
	})
}

// SaveProfile stores profile.
func (a *App) SaveProfile(ctx context.Context, profile domain.Profile) error {
	profile.UserID = a.userOr(profile.UserID)
	return a.exec(ctx, "profile", func(ctx context.Context) (any, error) {
		return a.service.SaveProfile(ctx, profile)
	})
}

// SyncGoogleFit triggers a Google Fit sync.
func (a *App) SyncGoogleFit(ctx context.Context) error {
	return a.exec(ctx, "sync google-fit", a.service.SyncGoogleFit)
}

func (a *App) userOr(id string) string {
	if id == "" {
		return a.cfg.UserID
	}
	return id
}

func (a *App) exec(ctx context.Context, op string, fn func(context.Context) (any, error)) error {
	start := time.Now()
	a.log.InfoObj("request started", "op", op)
	res, err := fn(ctx)
	if err != nil {
		// main reports the error to the user
		a.log.DebugObj("request failed", "request_error", map[string]any{
			"op":    op,
			"error": err.Error(),
		})
		return err
	}
	a.log.DebugObj("request completed", "request_meta", map[string]any{
		"op":         op,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return Render(a.out, a.cfg.OutputFormat, res)
}

// Render writes v to w in the given format.
func Render(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case config.OutputJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
