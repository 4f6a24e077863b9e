// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/vidsum/internal/models"
	"github.com/desertthunder/vidsum/internal/services"
)

// MockBackend is a configurable test double for [services.Backend].
// Unset function fields return empty results.
type MockBackend struct {
	SearchFn        func(ctx context.Context, query models.SearchQuery) ([]models.VideoResult, error)
	SummarizeFn     func(ctx context.Context, videoID, formatType string) (*models.Summary, error)
	VerifyAuthFn    func(ctx context.Context) (*services.AuthClaims, error)
	SubscriptionsFn func(ctx context.Context) ([]models.Subscription, error)
	SubscribeFn     func(ctx context.Context, channelID string) (*models.Subscription, error)
	UnsubscribeFn   func(ctx context.Context, channelID string) error
}

func (m *MockBackend) Search(ctx context.Context, query models.SearchQuery) ([]models.VideoResult, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, query)
	}
	return []models.VideoResult{}, nil
}

func (m *MockBackend) Summarize(ctx context.Context, videoID, formatType string) (*models.Summary, error) {
	if m.SummarizeFn != nil {
		return m.SummarizeFn(ctx, videoID, formatType)
	}
	return &models.Summary{}, nil
}

func (m *MockBackend) VerifyAuth(ctx context.Context) (*services.AuthClaims, error) {
	if m.VerifyAuthFn != nil {
		return m.VerifyAuthFn(ctx)
	}
	return &services.AuthClaims{}, nil
}

func (m *MockBackend) Subscriptions(ctx context.Context) ([]models.Subscription, error) {
	if m.SubscriptionsFn != nil {
		return m.SubscriptionsFn(ctx)
	}
	return []models.Subscription{}, nil
}

func (m *MockBackend) Subscribe(ctx context.Context, channelID string) (*models.Subscription, error) {
	if m.SubscribeFn != nil {
		return m.SubscribeFn(ctx, channelID)
	}
	return &models.Subscription{ChannelID: channelID, ChannelTitle: channelID}, nil
}

func (m *MockBackend) Unsubscribe(ctx context.Context, channelID string) error {
	if m.UnsubscribeFn != nil {
		return m.UnsubscribeFn(ctx, channelID)
	}
	return nil
}

// MemoryStore is an in-memory [session.Store] double.
type MemoryStore struct {
	Session *models.Session
	SaveErr error
	LoadErr error
}

func (s *MemoryStore) Save(sess *models.Session) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Session = sess
	return nil
}

func (s *MemoryStore) Load() (*models.Session, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Session, nil
}

func (s *MemoryStore) Clear() error {
	s.Session = nil
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
