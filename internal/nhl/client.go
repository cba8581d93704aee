package nhl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Fetcher is the read-only NHL API surface the UI depends on. *Client
// implements it; tests substitute fakes.
type Fetcher interface {
	FetchStandings(ctx context.Context) ([]Standing, error)
	FetchScores(ctx context.Context, date string) (Scoreboard, error)
	FetchBoxscore(ctx context.Context, gameID int64) (*Boxscore, error)
	FetchClubStats(ctx context.Context, team string) (*ClubStats, error)
	FetchPlayer(ctx context.Context, playerID int64) (*Player, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// ErrNotFound is returned when the API answers 404.
var ErrNotFound = errors.New("not found")

// Client talks to the NHL web API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	cache     *cache.Cache
	logger    *zap.Logger
}

const (
	DefaultBaseURL   = "https://api-web.nhle.com"
	defaultUserAgent = "faceoff/0.1"
	requestTimeout   = 10 * time.Second
	defaultCacheTTL  = 5 * time.Minute
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	teamPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Option configures a Client.
type Option func(*Client)

// WithCacheTTL sets how long club stats, player pages and final boxscores
// are reused. A non-positive ttl disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl <= 0 {
			c.cache = nil
			return
		}
		c.cache = cache.New(ttl, 2*ttl)
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a Client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
		cache:     cache.New(defaultCacheTTL, 2*defaultCacheTTL),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchStandings retrieves the current league standings.
func (c *Client) FetchStandings(ctx context.Context) ([]Standing, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload StandingsResponse
	if err := c.get(ctx, "/v1/standings/now", &payload); err != nil {
		return nil, err
	}
	return payload.Standings, nil
}

// FetchScores retrieves the scoreboard for date (YYYY-MM-DD), or today when
// date is empty.
func (c *Client) FetchScores(ctx context.Context, date string) (Scoreboard, error) {
	if c == nil {
		return Scoreboard{}, fmt.Errorf("client is nil")
	}
	date = strings.TrimSpace(date)
	if date == "" {
		date = "now"
	} else if !datePattern.MatchString(date) {
		return Scoreboard{}, fmt.Errorf("invalid date %q", date)
	}
	var payload Scoreboard
	if err := c.get(ctx, "/v1/score/"+date, &payload); err != nil {
		return Scoreboard{}, err
	}
	return payload, nil
}

// FetchBoxscore retrieves a game's boxscore. Finished games are cached.
func (c *Client) FetchBoxscore(ctx context.Context, gameID int64) (*Boxscore, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if gameID <= 0 {
		return nil, fmt.Errorf("game id required")
	}
	key := "boxscore/" + strconv.FormatInt(gameID, 10)
	if hit, ok := c.cached(key); ok {
		return hit.(*Boxscore), nil
	}
	var payload Boxscore
	if err := c.get(ctx, "/v1/gamecenter/"+strconv.FormatInt(gameID, 10)+"/boxscore", &payload); err != nil {
		return nil, err
	}
	if payload.IsFinal() {
		c.store(key, &payload)
	}
	return &payload, nil
}

// FetchClubStats retrieves a team's current-season skater and goalie stats.
func (c *Client) FetchClubStats(ctx context.Context, team string) (*ClubStats, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	team = strings.ToUpper(strings.TrimSpace(team))
	if !teamPattern.MatchString(team) {
		return nil, fmt.Errorf("invalid team %q", team)
	}
	key := "club-stats/" + team
	if hit, ok := c.cached(key); ok {
		return hit.(*ClubStats), nil
	}
	var payload ClubStats
	if err := c.get(ctx, "/v1/club-stats/"+team+"/now", &payload); err != nil {
		return nil, err
	}
	c.store(key, &payload)
	return &payload, nil
}

// FetchPlayer retrieves a player's landing page.
func (c *Client) FetchPlayer(ctx context.Context, playerID int64) (*Player, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if playerID <= 0 {
		return nil, fmt.Errorf("player id required")
	}
	key := "player/" + strconv.FormatInt(playerID, 10)
	if hit, ok := c.cached(key); ok {
		return hit.(*Player), nil
	}
	var payload Player
	if err := c.get(ctx, "/v1/player/"+strconv.FormatInt(playerID, 10)+"/landing", &payload); err != nil {
		return nil, err
	}
	c.store(key, &payload)
	return &payload, nil
}

// FlushCache drops every cached response.
func (c *Client) FlushCache() {
	if c != nil && c.cache != nil {
		c.cache.Flush()
	}
}

func (c *Client) cached(key string) (any, bool) {
	if c.cache == nil {
		return nil, false
	}
	v, ok := c.cache.Get(key)
	if ok {
		c.logger.Debug("cache hit", zap.String("key", key))
	}
	return v, ok
}

func (c *Client) store(key string, v any) {
	if c.cache != nil {
		c.cache.Set(key, v, cache.DefaultExpiration)
	}
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	c.logger.Debug("api request",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("api %s: %w", path, ErrNotFound)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_base %q: missing host", raw)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
