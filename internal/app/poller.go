package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/faceoff/internal/nhl"
	"github.com/five82/faceoff/internal/state"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 5 * time.Minute
)

// StartPoller launches a background goroutine that refreshes the store with
// today's scoreboard and the standings. Failures back off exponentially. It
// returns immediately; the goroutine exits when ctx is cancelled.
func StartPoller(ctx context.Context, store *state.Store, client nhl.Fetcher, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			if ctx.Err() != nil {
				return
			}
			refresh(ctx, store, client, logger)
			timer.Reset(calculateBackoff(store.Snapshot().ConsecutiveFailures, interval))
		}
	}()
}

// calculateBackoff doubles base per consecutive failure, capped at
// maxBackoff. The wait never drops below base, so a long poll interval is
// not shortened by a failure.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	limit := max(maxBackoff, base)
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= limit {
			return limit
		}
	}
	return wait
}

func refresh(ctx context.Context, store *state.Store, client nhl.Fetcher, logger *zap.Logger) {
	scores, err := client.FetchScores(ctx, "")
	if err != nil {
		store.Update(nil, nil, err)
		logger.Warn("scores poll failed", zap.Error(err))
		return
	}
	standings, err := client.FetchStandings(ctx)
	if err != nil {
		store.Update(nil, &scores, err)
		logger.Warn("standings poll failed", zap.Error(err))
		return
	}
	store.Update(standings, &scores, nil)
	logger.Debug("poll complete",
		zap.Int("games", len(scores.Games)),
		zap.Int("teams", len(standings)),
	)
}
