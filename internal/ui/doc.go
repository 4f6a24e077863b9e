// Package ui implements the interactive terminal client using bubbletea's Elm architecture.
//
// The layout mirrors a single-page app: a fixed route table maps paths to
// views, a [Router] applies access-policy rewrites (protected routes fall
// back to the login form, public-only routes bounce signed-in users home),
// and a nav bar regenerates on every session transition.
//
// The root [Model] owns routing and the nav; each mounted view implements
// the viewModel Init/Update/View contract. Session transitions from the
// oracle arrive over a channel as messages, so guard re-evaluation happens
// inside the event loop.
//
// All backend traffic runs as commands completing with typed messages.
// Search and summarize carry generation counters; a response from a
// superseded request is dropped instead of overwriting newer state.
package ui
