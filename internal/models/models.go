// package models defines the data model for the vidsum client
package models

import (
	"fmt"
	"time"
)

// MaxResultsOptions is the enumerated set of allowed result-count limits for a search.
var MaxResultsOptions = []int{5, 10, 15, 20}

// SearchQuery is built per search submission; it is never persisted.
type SearchQuery struct {
	Query          string
	PublishedAfter time.Time
	ChannelID      string // optional channel filter
	MaxResults     int
}

// Validate checks the query against the backend's accepted parameter set.
func (q SearchQuery) Validate() error {
	if q.Query == "" {
		return fmt.Errorf("search query is required")
	}
	if q.PublishedAfter.IsZero() {
		return fmt.Errorf("published-after date is required")
	}
	for _, n := range MaxResultsOptions {
		if q.MaxResults == n {
			return nil
		}
	}
	return fmt.Errorf("max results must be one of %v, got %d", MaxResultsOptions, q.MaxResults)
}

// VideoResult represents one search hit as returned by the backend.
//
// ViewCount stays a string: the backend sends "N/A" when statistics are
// unavailable for a video.
type VideoResult struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail"`
	ChannelID    string `json:"channel_id"`
	ChannelTitle string `json:"channel_title"`
	PublishedAt  string `json:"published_at"`
	ViewCount    string `json:"view_count"`
	URL          string `json:"url"`
}

// Summary is the AI-generated condensation of a single video.
//
// MarkdownContent is only populated when the Markdown representation was
// requested; it is an alternate rendering of the same summary.
type Summary struct {
	BriefSummary    string   `json:"brief_summary"`
	KeyPoints       []string `json:"key_points"`
	MainTopics      []string `json:"main_topics"`
	VideoURL        string   `json:"video_url"`
	MarkdownContent string   `json:"markdown_content,omitempty"`
}

// Subscription is a registered interest in a channel, unique by ChannelID.
type Subscription struct {
	ChannelID    string `json:"channel_id"`
	ChannelTitle string `json:"channel_title"`
}

// User holds the identity attributes the client consumes from the provider.
type User struct {
	UID           string
	Email         string
	EmailVerified bool
}

// Session is the oracle's persisted record of the active sign-in.
//
// Exactly one session exists client-wide; creating a new one replaces the
// previous row.
type Session struct {
	ID            string
	UID           string
	Email         string
	EmailVerified bool
	IDToken       string
	RefreshToken  string
	ExpiresAt     time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// User projects the identity attributes out of the session.
func (s *Session) User() User {
	return User{UID: s.UID, Email: s.Email, EmailVerified: s.EmailVerified}
}

// Expired reports whether the cached ID token needs a refresh.
//
// A small skew keeps a token from expiring mid-request.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now.Add(30 * time.Second))
}

// Validate checks that the session carries everything the oracle needs.
func (s *Session) Validate() error {
	if s.UID == "" {
		return fmt.Errorf("session missing uid")
	}
	if s.IDToken == "" || s.RefreshToken == "" {
		return fmt.Errorf("session missing tokens")
	}
	return nil
}
