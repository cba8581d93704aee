// Package nhl is a small client for the public NHL web API
// (https://api-web.nhle.com).
//
// # Endpoints
//
//   - GET /v1/standings/now: league standings
//   - GET /v1/score/{date|now}: scoreboard for a day
//   - GET /v1/gamecenter/{id}/boxscore: per-player game stats
//   - GET /v1/club-stats/{team}/now: a team's season skater and goalie stats
//   - GET /v1/player/{id}/landing: player bio, featured stats, recent games
//
// All requests carry a context, an Accept: application/json header and the
// faceoff user agent. A 404 is reported as ErrNotFound so callers can show
// "not found" instead of a transport error.
//
// # Caching
//
// Club stats, player pages and boxscores of finished games change rarely and
// are kept in a go-cache store for the configured TTL. Standings, scoreboards
// and live boxscores always go to the network; the poller refreshes those.
//
// # Ordering
//
// SkaterDisplayOrder, GoalieDisplayOrder and StandingsOrder are the single
// source of display order. Screens render with them and selection resolution
// re-applies them, so a row index picked on screen always maps back to the
// same player.
package nhl
