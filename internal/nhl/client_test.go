package nhl

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("url = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	u, err = parseBaseURL("api.example.com")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "api.example.com" {
		t.Fatalf("url = %q, want https://api.example.com", u.String())
	}

	u, err = parseBaseURL(" 127.0.0.1:8080 ")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != "https://127.0.0.1:8080" {
		t.Fatalf("url = %q, want https://127.0.0.1:8080", u.String())
	}
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_FetchesEndpoints(t *testing.T) {
	t.Parallel()

	var gotUserAgent atomic.Value
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent.Store(r.Header.Get("User-Agent"))
		switch r.URL.Path {
		case "/v1/standings/now":
			_, _ = w.Write([]byte(`{"standings":[{"teamAbbrev":{"default":"TOR"},"divisionName":"Atlantic","points":80,"streakCode":"W","streakCount":3}]}`))
		case "/v1/score/now", "/v1/score/2026-01-12":
			writeJSON(w, Scoreboard{CurrentDate: "2026-01-12", Games: []Game{{ID: 1, GameState: "LIVE"}}})
		case "/v1/gamecenter/2025020700/boxscore":
			writeJSON(w, Boxscore{ID: 2025020700, GameState: "LIVE"})
		case "/v1/club-stats/TOR/now":
			writeJSON(w, ClubStats{Season: "20252026", Skaters: []Skater{{PlayerID: 8479318, Points: 50}}})
		case "/v1/player/8479318/landing":
			writeJSON(w, Player{PlayerID: 8479318, Position: "C"})
		default:
			http.NotFound(w, r)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	standings, err := c.FetchStandings(ctx)
	if err != nil {
		t.Fatalf("FetchStandings returned error: %v", err)
	}
	if len(standings) != 1 || standings[0].Abbrev() != "TOR" || standings[0].Streak() != "W3" {
		t.Fatalf("FetchStandings = %#v", standings)
	}

	for _, date := range []string{"", "2026-01-12"} {
		board, err := c.FetchScores(ctx, date)
		if err != nil {
			t.Fatalf("FetchScores(%q) returned error: %v", date, err)
		}
		if len(board.Games) != 1 || !board.Games[0].IsLive() {
			t.Fatalf("FetchScores(%q) = %#v", date, board)
		}
	}

	box, err := c.FetchBoxscore(ctx, 2025020700)
	if err != nil || box.ID != 2025020700 {
		t.Fatalf("FetchBoxscore = %#v, %v", box, err)
	}

	stats, err := c.FetchClubStats(ctx, " tor ")
	if err != nil || len(stats.Skaters) != 1 {
		t.Fatalf("FetchClubStats = %#v, %v", stats, err)
	}

	player, err := c.FetchPlayer(ctx, 8479318)
	if err != nil || player.PlayerID != 8479318 {
		t.Fatalf("FetchPlayer = %#v, %v", player, err)
	}

	if ua, _ := gotUserAgent.Load().(string); !strings.HasPrefix(ua, "faceoff/") {
		t.Fatalf("User-Agent = %q, want faceoff/*", ua)
	}
}

func TestClient_RejectsBadArguments(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()
	if _, err := c.FetchScores(ctx, "yesterday"); err == nil {
		t.Fatalf("FetchScores accepted a bad date")
	}
	if _, err := c.FetchClubStats(ctx, "TORONTO"); err == nil {
		t.Fatalf("FetchClubStats accepted a bad team")
	}
	if _, err := c.FetchPlayer(ctx, 0); err == nil {
		t.Fatalf("FetchPlayer accepted id 0")
	}
	if _, err := c.FetchBoxscore(ctx, -1); err == nil {
		t.Fatalf("FetchBoxscore accepted id -1")
	}

	var nilClient *Client
	if _, err := nilClient.FetchStandings(ctx); err == nil {
		t.Fatalf("nil client returned nil error")
	}
}

func TestClient_HTTPErrors(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/standings/now":
			_, _ = w.Write([]byte("{not-json"))
		case "/v1/score/now":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	_, err := c.FetchStandings(ctx)
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchStandings error = %v, want decode response error", err)
	}

	_, err = c.FetchScores(ctx, "")
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchScores error = %v, want status 500 error", err)
	}

	_, err = c.FetchPlayer(ctx, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("FetchPlayer error = %v, want ErrNotFound", err)
	}
}

func TestClient_CachesStableResponses(t *testing.T) {
	t.Parallel()

	var clubHits, liveHits, finalHits atomic.Int32
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/club-stats/MTL/now":
			clubHits.Add(1)
			writeJSON(w, ClubStats{Season: "20252026"})
		case "/v1/gamecenter/1/boxscore":
			liveHits.Add(1)
			writeJSON(w, Boxscore{ID: 1, GameState: "LIVE"})
		case "/v1/gamecenter/2/boxscore":
			finalHits.Add(1)
			writeJSON(w, Boxscore{ID: 2, GameState: "OFF"})
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	for range 3 {
		if _, err := c.FetchClubStats(ctx, "MTL"); err != nil {
			t.Fatalf("FetchClubStats: %v", err)
		}
		if _, err := c.FetchBoxscore(ctx, 1); err != nil {
			t.Fatalf("FetchBoxscore live: %v", err)
		}
		if _, err := c.FetchBoxscore(ctx, 2); err != nil {
			t.Fatalf("FetchBoxscore final: %v", err)
		}
	}
	if clubHits.Load() != 1 {
		t.Fatalf("club stats requested %d times, want 1", clubHits.Load())
	}
	if liveHits.Load() != 3 {
		t.Fatalf("live boxscore requested %d times, want 3", liveHits.Load())
	}
	if finalHits.Load() != 1 {
		t.Fatalf("final boxscore requested %d times, want 1", finalHits.Load())
	}

	c.FlushCache()
	if _, err := c.FetchClubStats(ctx, "MTL"); err != nil {
		t.Fatalf("FetchClubStats: %v", err)
	}
	if clubHits.Load() != 2 {
		t.Fatalf("club stats requested %d times after flush, want 2", clubHits.Load())
	}
}

func TestClient_CacheDisabled(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(w, Player{PlayerID: 7})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, WithCacheTTL(0))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	for range 2 {
		if _, err := c.FetchPlayer(context.Background(), 7); err != nil {
			t.Fatalf("FetchPlayer: %v", err)
		}
	}
	if hits.Load() != 2 {
		t.Fatalf("requests = %d, want 2 with caching disabled", hits.Load())
	}
}
