// Package screens turns NHL data into documents for the navigation engine.
//
// Every screen is a small value type implementing document.Document. The UI
// owns the data and hands a fresh value to View.Rebuild or Entry.Refresh when
// something changes; screens never fetch or cache anything themselves.
//
// Focusable targets use the Target* kinds below. Targets backed by a sorted
// list carry the flat index across every section of the screen plus the
// identifier that was displayed at that index. The matching Resolve function
// re-applies the same display order from package nhl and refuses a selection
// whose identifier no longer lines up with the data, so a refresh that lands
// between render and activation cannot open the wrong game or player.
package screens
