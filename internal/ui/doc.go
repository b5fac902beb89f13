// Package ui provides the terminal user interface for MUSE.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. It never talks to the MonPlan API itself:
// every user intent goes through actions.Actions, which dispatches events to
// the shared state.Store. The model keeps a copy of the latest store
// snapshot and redraws from it.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key handling, messages and commands
//   - render.go: header, search pane, unit pane, footer and help overlay
//   - keys.go: key bindings
//   - theme.go: colors and lipgloss styles
//
// # Event Flow
//
//  1. Run starts the program with a Model built from Options.
//  2. A tick refreshes the snapshot so background fetches show up.
//  3. Typing in the search box runs a search synchronously and reveals
//     results that an earlier selection hid.
//  4. Opening a unit hides the results and starts a fetch in a tea.Cmd.
//     Reload and back do the same. Their completion triggers another
//     snapshot refresh.
//
// # Key Bindings
//
// Search pane:
//
//   - enter: Open the selected result
//   - up/down: Move the selection
//   - esc: Hide results, or clear the query when nothing is listed
//   - ctrl+r: Reload the open unit
//   - ctrl+b: Return to the previous unit
//
// Unit pane:
//
//   - 1-9: Open a related unit named in the prerequisites or prohibitions
//   - r: Reload the open unit
//   - b: Return to the previous unit
//   - esc, x or q: Close the unit
//   - j/k: Scroll
//   - /: Back to search
//   - ?: Help
//
// tab switches panes and ctrl+c quits from anywhere.
package ui
