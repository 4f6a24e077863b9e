// Package services talks to the summarizer backend. The APIService
// implements the Backend interface over HTTP, attaching bearer tokens
// from the active session and normalizing error responses.
package services
