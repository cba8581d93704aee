package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/faceoff/internal/logging"
	"github.com/five82/faceoff/internal/nhl"
	"github.com/five82/faceoff/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	tests := []struct {
		name     string
		base     time.Duration
		failures int
		want     time.Duration
	}{
		{"zero failures", 2 * time.Second, 0, 2 * time.Second},
		{"negative failures", 2 * time.Second, -1, 2 * time.Second},
		{"one failure", 2 * time.Second, 1, 4 * time.Second},
		{"two failures", 2 * time.Second, 2, 8 * time.Second},
		{"seven failures", 2 * time.Second, 7, 256 * time.Second},
		{"eight failures capped", 2 * time.Second, 8, 5 * time.Minute}, // Would be 512s
		{"default interval one failure", 30 * time.Second, 1, time.Minute},
		{"default interval two failures", 30 * time.Second, 2, 2 * time.Minute},
		{"default interval three failures", 30 * time.Second, 3, 4 * time.Minute},
		{"default interval capped", 30 * time.Second, 4, 5 * time.Minute},
		{"minute interval one failure", time.Minute, 1, 2 * time.Minute},
		{"minute interval capped", time.Minute, 3, 5 * time.Minute},
		{"interval above cap", 10 * time.Minute, 2, 10 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, tt.base)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, tt.base, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_NeverShortensOrExceedsCap(t *testing.T) {
	for _, base := range []time.Duration{time.Second, 30 * time.Second, time.Minute, 10 * time.Minute} {
		limit := max(maxBackoff, base)
		prev := base
		for failures := 0; failures <= 100; failures++ {
			got := calculateBackoff(failures, base)
			if got < prev {
				t.Errorf("calculateBackoff(%d, %v) = %v, shorter than %v", failures, base, got, prev)
			}
			if got > limit {
				t.Errorf("calculateBackoff(%d, %v) = %v, exceeds %v", failures, base, got, limit)
			}
			prev = got
		}
	}
}

// fakeFetcher serves canned poll data; the drill-down endpoints are unused.
type fakeFetcher struct {
	scoresErr    error
	standingsErr error
	calls        atomic.Int32
}

func (f *fakeFetcher) FetchStandings(context.Context) ([]nhl.Standing, error) {
	if f.standingsErr != nil {
		return nil, f.standingsErr
	}
	return []nhl.Standing{{TeamAbbrev: nhl.LocalizedString{Default: "TOR"}}}, nil
}

func (f *fakeFetcher) FetchScores(context.Context, string) (nhl.Scoreboard, error) {
	f.calls.Add(1)
	if f.scoresErr != nil {
		return nhl.Scoreboard{}, f.scoresErr
	}
	return nhl.Scoreboard{CurrentDate: "2026-01-12", Games: []nhl.Game{{ID: 1}}}, nil
}

func (f *fakeFetcher) FetchBoxscore(context.Context, int64) (*nhl.Boxscore, error) {
	return nil, nhl.ErrNotFound
}

func (f *fakeFetcher) FetchClubStats(context.Context, string) (*nhl.ClubStats, error) {
	return nil, nhl.ErrNotFound
}

func (f *fakeFetcher) FetchPlayer(context.Context, int64) (*nhl.Player, error) {
	return nil, nhl.ErrNotFound
}

func TestRefresh_UpdatesStore(t *testing.T) {
	var store state.Store
	refresh(context.Background(), &store, &fakeFetcher{}, logging.Nop())

	snap := store.Snapshot()
	if !snap.HasScores || !snap.HasStandings {
		t.Fatalf("snapshot = %+v, want scores and standings", snap)
	}
	if snap.Version != 1 || snap.LastError != nil {
		t.Fatalf("Version = %d, LastError = %v", snap.Version, snap.LastError)
	}
}

func TestRefresh_RecordsFailures(t *testing.T) {
	var store state.Store
	refresh(context.Background(), &store, &fakeFetcher{scoresErr: errors.New("scores down")}, logging.Nop())
	refresh(context.Background(), &store, &fakeFetcher{scoresErr: errors.New("scores down")}, logging.Nop())

	snap := store.Snapshot()
	if snap.ConsecutiveFailures != 2 || !snap.IsOffline() {
		t.Fatalf("ConsecutiveFailures = %d, want 2", snap.ConsecutiveFailures)
	}
	if snap.HasScores || snap.HasStandings || snap.Version != 0 {
		t.Fatalf("failed polls published data: %+v", snap)
	}
	if snap.LastError == nil || snap.LastError.Error() != "scores down" {
		t.Fatalf("LastError = %v", snap.LastError)
	}
}

func TestRefresh_StandingsFailureKeepsScores(t *testing.T) {
	var store state.Store
	refresh(context.Background(), &store, &fakeFetcher{standingsErr: errors.New("standings down")}, logging.Nop())

	snap := store.Snapshot()
	if !snap.HasScores || snap.Scores.CurrentDate != "2026-01-12" {
		t.Fatalf("scores = %+v, want the board fetched before the failure", snap.Scores)
	}
	if snap.HasStandings {
		t.Fatalf("standings published without data")
	}
	if snap.ConsecutiveFailures != 1 || snap.LastError == nil || snap.LastError.Error() != "standings down" {
		t.Fatalf("failure not recorded: failures=%d err=%v", snap.ConsecutiveFailures, snap.LastError)
	}
}

func TestStartPoller_PollsUntilCancelled(t *testing.T) {
	var store state.Store
	fetcher := &fakeFetcher{}
	ctx, cancel := context.WithCancel(context.Background())

	StartPoller(ctx, &store, fetcher, 5*time.Millisecond, nil)

	deadline := time.Now().Add(2 * time.Second)
	for store.Version() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("poller did not refresh twice; version = %d", store.Version())
		}
		time.Sleep(time.Millisecond)
	}
	cancel()

	// Allow an in-flight refresh to land, then make sure polling stopped.
	time.Sleep(20 * time.Millisecond)
	calls := fetcher.calls.Load()
	time.Sleep(50 * time.Millisecond)
	if got := fetcher.calls.Load(); got != calls {
		t.Fatalf("poller kept running after cancel: %d -> %d calls", calls, got)
	}
}
