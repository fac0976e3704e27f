package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gaurav-prasanna/charsheet/config"
	"github.com/gaurav-prasanna/charsheet/core"
	"github.com/gaurav-prasanna/charsheet/core/fetch"
	"github.com/gaurav-prasanna/charsheet/core/pipeline"
	"github.com/gaurav-prasanna/charsheet/search"
	"github.com/gaurav-prasanna/charsheet/storage"
	"github.com/gaurav-prasanna/charsheet/storage/drive"
	"github.com/gaurav-prasanna/charsheet/storage/local"
)

// app holds the collaborators built once per process.
type app struct {
	runner  *pipeline.Runner
	secrets *config.Secrets
	// drive is nil when no service-account credentials are configured.
	drive *drive.Store
}

func newApp(ctx context.Context, cfg config.Config, log *slog.Logger) (*app, error) {
	secrets, err := config.LoadSecrets(cfg.SecretsFile)
	if err != nil {
		return nil, err
	}

	driveStore, err := newDriveStore(ctx, cfg, secrets)
	if err != nil {
		return nil, err
	}

	var templates core.TemplateStore
	if driveStore != nil {
		log.Debug("reading templates from Google Drive")
		templates = driveStore
	} else {
		log.Debug("reading templates from disk", "dir", cfg.TemplateDir)
		templates = local.New(cfg.TemplateDir)
	}

	fetcher := fetch.New(fetch.WithUserAgent(cfg.UserAgent), fetch.WithTimeout(cfg.Timeout))
	searcher := search.New(cfg.SearchURL, cfg.UserAgent)

	return &app{
		runner:  pipeline.NewRunner(searcher, fetcher, storage.NewCached(templates), log),
		secrets: secrets,
		drive:   driveStore,
	}, nil
}

// newDriveStore returns nil when neither a credentials file nor a secrets
// table is configured.
func newDriveStore(ctx context.Context, cfg config.Config, secrets *config.Secrets) (*drive.Store, error) {
	creds, err := cfg.ServiceAccount(secrets)
	if err != nil {
		return nil, err
	}
	if len(creds) == 0 {
		return nil, nil
	}
	store, err := drive.NewFromServiceAccount(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("initializing template storage: %w", err)
	}
	return store, nil
}
