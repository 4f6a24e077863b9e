// package services defines interface Backend for the summarization API
package services

import (
	"context"

	"github.com/desertthunder/vidsum/internal/models"
)

// Backend defines the operations the client consumes from the backend HTTP API.
//
// Every method attaches a bearer credential obtained fresh from the session
// oracle; none of them retry on failure.
type Backend interface {
	// Search runs a video search and returns the result list.
	Search(ctx context.Context, query models.SearchQuery) ([]models.VideoResult, error)

	// Summarize generates an AI summary for a video. formatType selects the
	// representation: "json" (default) or "markdown", which additionally
	// populates Summary.MarkdownContent.
	Summarize(ctx context.Context, videoID, formatType string) (*models.Summary, error)

	// VerifyAuth asks the backend to verify the current bearer token and
	// returns the decoded claims.
	VerifyAuth(ctx context.Context) (*AuthClaims, error)

	// Subscriptions returns the user's channel subscriptions.
	Subscriptions(ctx context.Context) ([]models.Subscription, error)

	// Subscribe registers interest in a channel and returns the
	// server-confirmed subscription (the backend resolves the title).
	Subscribe(ctx context.Context, channelID string) (*models.Subscription, error)

	// Unsubscribe removes a channel subscription.
	Unsubscribe(ctx context.Context, channelID string) error
}

// AuthClaims is the verified token payload returned by the backend.
type AuthClaims struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	AuthTime      int64  `json:"auth_time"`
}

// FormatJSON and FormatMarkdown are the accepted summarize representations.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)
