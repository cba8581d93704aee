// Package ui provides the terminal user interface for faceoff.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns three tabs (Scores, Standings
// and Log). Each tab has a base document.View fed from the poller's
// state.Store and a document.Stack of drill-down screens opened from it.
// Keys act on whichever view is on top: the stack's top entry when the stack
// is non-empty, the base view otherwise.
//
// # Package Structure
//
//   - app.go: Model, Options, Update/View and the Run entry point
//   - tabs.go: tab layout, base documents and the day switcher
//   - navigate.go: opening targets and applying fetched documents
//   - header.go: tab bar, breadcrumbs, status and command hints
//   - keys.go, help.go: key bindings and the help page built from them
//   - theme.go: color palettes and their document styles
//
// # Event Flow
//
//  1. Run() builds the Model and starts the program
//  2. A tick every second copies the store snapshot; base documents are
//     rebuilt only when its version moved
//  3. Enter on a link pushes a placeholder screen, takes a load token from
//     the stack and fetches in a tea.Cmd
//  4. The fetched document is applied only if the stack still honors the
//     token, so results for screens the user already left are dropped
//  5. Context cancellation stops the program
package ui
