// Package document is the navigation engine behind every faceoff screen.
//
// A screen is a Document that builds a tree of Elements from an immutable
// data snapshot. A View turns that tree into something navigable:
//
//   - CollectNodes flattens the tree into a document-ordered list of focusable
//     Nodes (links and link cells in tables) with absolute y offsets.
//   - FocusIndex moves through those nodes with Tab-style wrapping and moves
//     laterally between the columns of a Row.
//   - Viewport scrolls a window of fixed height over the content and keeps
//     the focused node in view with padding that grows with the window.
//
// Render draws only the elements that intersect the window, so the cost of a
// frame follows the visible content rather than the document size.
//
// A Stack holds drill-down Views. Pushing opens a detail screen; popping
// returns to the previous one with its focus and scroll offset untouched.
// Fetches started for an entry carry a LoadToken, and results whose entry
// has since been popped are dropped by FinishLoad.
//
// Everything here runs on the UI goroutine. Nothing blocks or performs I/O.
package document
