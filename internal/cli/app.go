package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/herniqeu/version-guard/internal/config"
	"github.com/herniqeu/version-guard/internal/github"
)

type appKey struct{}

type App struct {
	Config     config.Config
	RepoConfig config.RepoConfig
	Diffs      github.DiffSource
	Comments   github.CommentSink
	Mock       bool
}

func withApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

func getApp(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(appKey{}).(*App)
	if !ok || app == nil {
		return nil, fmt.Errorf("internal error: app not initialized")
	}
	return app, nil
}

func initApp(configPath string) (*App, error) {
	cfg, repoCfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if os.Getenv("VG_MOCK") == "1" {
		fixtures := os.Getenv("VG_MOCK_DIR")
		if fixtures == "" {
			fixtures = filepath.Join("testdata", "github")
		}
		fixture := github.NewFixtureClient(fixtures)
		return &App{
			Config:     cfg,
			RepoConfig: repoCfg,
			Diffs:      fixture,
			Comments:   fixture,
			Mock:       true,
		}, nil
	}

	client, err := github.NewClient(cfg.Token, cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	return &App{
		Config:     cfg,
		RepoConfig: repoCfg,
		Diffs:      client,
		Comments:   client,
	}, nil
}
