// API client for the summarization backend
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/desertthunder/vidsum/internal/models"
	"github.com/desertthunder/vidsum/internal/shared"
	"golang.org/x/oauth2"
)

const defaultBaseURL = "http://localhost:5000"

// APIError is the normalized failure for any backend call.
//
// Message prefers the backend-supplied error field and falls back to a
// generic status-coded text, so UI components can display it verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// APIService implements [Backend] over HTTP.
type APIService struct {
	baseURL    string
	httpClient *http.Client
	tokens     oauth2.TokenSource
}

// NewAPIService creates a new API client.
//
// tokens supplies the bearer credential per request; a nil source sends
// unauthenticated requests (the backend rejects them with 401, which
// surfaces through the normal error path).
func NewAPIService(baseURL string, client *http.Client, tokens oauth2.TokenSource) *APIService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &APIService{
		baseURL:    baseURL,
		httpClient: client,
		tokens:     tokens,
	}
}

var _ Backend = (*APIService)(nil)

// Search runs POST /api/search.
func (a *APIService) Search(ctx context.Context, query models.SearchQuery) ([]models.VideoResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	body := map[string]any{
		"q":               query.Query,
		"published_after": query.PublishedAfter.UTC().Format(time.RFC3339),
		"max_results":     query.MaxResults,
	}
	if query.ChannelID != "" {
		body["channel_id"] = query.ChannelID
	}

	var result struct {
		Videos []models.VideoResult `json:"videos"`
	}
	if err := a.do(ctx, http.MethodPost, "/api/search", body, &result); err != nil {
		return nil, err
	}
	return result.Videos, nil
}

// Summarize runs POST /api/summarize.
func (a *APIService) Summarize(ctx context.Context, videoID, formatType string) (*models.Summary, error) {
	body := map[string]any{"video_id": videoID}
	if formatType != "" {
		body["format_type"] = formatType
	}

	var summary models.Summary
	if err := a.do(ctx, http.MethodPost, "/api/summarize", body, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// VerifyAuth runs POST /api/auth/verify.
func (a *APIService) VerifyAuth(ctx context.Context) (*AuthClaims, error) {
	var result struct {
		User AuthClaims `json:"user"`
	}
	if err := a.do(ctx, http.MethodPost, "/api/auth/verify", nil, &result); err != nil {
		return nil, err
	}
	return &result.User, nil
}

// Subscriptions runs GET /api/subscriptions.
func (a *APIService) Subscriptions(ctx context.Context) ([]models.Subscription, error) {
	var result struct {
		Subscriptions []models.Subscription `json:"subscriptions"`
	}
	if err := a.do(ctx, http.MethodGet, "/api/subscriptions", nil, &result); err != nil {
		return nil, err
	}
	return result.Subscriptions, nil
}

// Subscribe runs POST /api/subscriptions.
func (a *APIService) Subscribe(ctx context.Context, channelID string) (*models.Subscription, error) {
	var result struct {
		Subscription models.Subscription `json:"subscription"`
	}
	body := map[string]any{"channel_id": channelID}
	if err := a.do(ctx, http.MethodPost, "/api/subscriptions", body, &result); err != nil {
		return nil, err
	}
	return &result.Subscription, nil
}

// Unsubscribe runs DELETE /api/subscriptions/{channel_id}.
func (a *APIService) Unsubscribe(ctx context.Context, channelID string) error {
	return a.do(ctx, http.MethodDelete, "/api/subscriptions/"+channelID, nil, nil)
}

// do issues one request: marshal body, attach bearer + request id, normalize
// failures to [*APIError], decode success into result.
func (a *APIService) do(ctx context.Context, method, path string, body, result any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", shared.GenerateID())

	if a.tokens != nil {
		token, err := a.tokens.Token()
		if err != nil {
			return err
		}
		token.SetAuthHeader(req)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return normalizeError(resp.StatusCode, raw)
	}

	if result != nil {
		if err := json.Unmarshal(raw, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func normalizeError(status int, body []byte) *APIError {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &APIError{Status: status, Message: payload.Error}
	}
	return &APIError{Status: status, Message: fmt.Sprintf("API error: %d", status)}
}
