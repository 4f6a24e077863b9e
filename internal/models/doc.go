// Package models holds the plain data types shared across the client:
// search queries and results, summaries, subscriptions, and the persisted
// session record.
//
// Wire-format tags live here because the backend's JSON field names are part
// of its contract; everything else is presentation and belongs to the ui
// package.
package models
