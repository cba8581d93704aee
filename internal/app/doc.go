// Package app is the composition root for faceoff.
//
// Run loads the TOML config, opens the zap logger, builds the NHL client and
// the shared state.Store, then starts the background poller and the Bubble
// Tea program. It blocks until the user quits or the context is cancelled.
//
// # Polling
//
// StartPoller refreshes today's scoreboard and the league standings on a
// fixed interval (30 seconds unless configured). A failed poll keeps the
// previous data in the store, records the error, and doubles the wait up to
// a five minute cap
// (or the interval itself when that is longer). The UI reads snapshots at its own tick and never blocks
// on the network.
//
// Detail screens (boxscores, rosters, players, other days) are fetched on
// demand by the UI, not by the poller.
//
// # Errors
//
// Only a bad config file, an unwritable log file, or an invalid API base
// URL stop startup. Network failures are logged and shown in the header.
package app
