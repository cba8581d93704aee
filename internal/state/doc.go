// Package state shares the polled standings and scoreboard between the
// background poller and the UI.
//
// # Architecture
//
//	Poller goroutine:              UI (bubbletea):
//	┌──────────────────┐          ┌──────────────────┐
//	│ FetchStandings() │          │ tick             │
//	│ FetchScores()    │          │   ↓              │
//	│      ↓           │          │ store.Version()  │
//	│ store.Update()   │─────────→│ store.Snapshot() │
//	│      ↓           │ (RWMutex)│   ↓              │
//	│  sleep/backoff   │          │ rebuild views    │
//	└──────────────────┘          └──────────────────┘
//
// Update takes the write lock, Snapshot and Version the read lock. The lock
// is held only while copying, never during network I/O or rendering.
//
// # Update Semantics
//
//	store.Update(standings, &scores, nil)
//	→ data replaced, LastError cleared, ConsecutiveFailures reset, Version++
//
//	store.Update(nil, nil, err)
//	→ data kept, LastError = err, ConsecutiveFailures++, Version unchanged
//
//	store.Update(nil, &scores, err)
//	→ scores replaced, standings kept, LastError = err, ConsecutiveFailures++, Version++
//
// Version only moves when data is stored, so the UI rebuilds its documents
// when there is new data and otherwise just redraws the status line. Keeping
// the last good data on failure lets the screens stay useful while the API is
// unreachable; IsOffline turns true after two failures in a row.
//
// # Copying
//
// Slices handed to Update and returned from Snapshot are cloned, so neither
// side can observe the other's mutations. The zero Store is ready to use.
package state
