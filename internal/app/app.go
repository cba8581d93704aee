package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/faceoff/internal/config"
	"github.com/five82/faceoff/internal/logging"
	"github.com/five82/faceoff/internal/nhl"
	"github.com/five82/faceoff/internal/prefs"
	"github.com/five82/faceoff/internal/state"
	"github.com/five82/faceoff/internal/ui"
)

const initialFetchTimeout = 5 * time.Second

// Options configure the faceoff application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/faceoff/prefs.toml
	PollEvery  int    // seconds; zero uses the config value
	Team       string // overrides favorite_team when set
}

// Run boots the faceoff TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if team := strings.TrimSpace(opts.Team); team != "" {
		cfg.FavoriteTeam = strings.ToUpper(team)
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("load preferences", zap.Error(err))
	}

	client, err := nhl.NewClient(cfg.APIBase, nhl.WithCacheTTL(cfg.CacheTTL), nhl.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("init nhl client: %w", err)
	}

	interval := cfg.PollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	logger.Info("starting",
		zap.String("api", cfg.APIBase),
		zap.Duration("poll", interval),
		zap.String("team", cfg.FavoriteTeam),
	)

	store := &state.Store{}

	// Populate the store before the first frame; failures land in the
	// snapshot and the poller keeps retrying.
	initCtx, cancel := context.WithTimeout(ctx, initialFetchTimeout)
	refresh(initCtx, store, client, logger)
	cancel()

	StartPoller(ctx, store, client, interval, logger)

	err = ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Config:    cfg,
		Logger:    logger,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		Location:  time.Local,
	})
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	logger.Info("stopped", zap.Error(err))
	return err
}
