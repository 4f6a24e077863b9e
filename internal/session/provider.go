// Identity provider REST client.
//
// Talks to the hosted identity toolkit (or its emulator) for email/password
// sign-up, sign-in, and refresh-token exchange. Token issuance and session
// lifetime policy live entirely on the provider side; this client only
// carries credentials back and forth.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/vidsum/internal/shared"
)

const (
	defaultEndpoint      = "https://identitytoolkit.googleapis.com/v1"
	defaultTokenEndpoint = "https://securetoken.googleapis.com/v1"
)

// Credential is the provider's answer to a successful sign-up, sign-in, or refresh.
type Credential struct {
	UID           string
	Email         string
	EmailVerified bool
	IDToken       string
	RefreshToken  string
	ExpiresAt     time.Time
}

// Provider issues and refreshes identity tokens for email/password accounts.
type Provider struct {
	apiKey        string
	endpoint      string
	tokenEndpoint string
	httpClient    *http.Client
}

// NewProvider creates a Provider from identity configuration.
func NewProvider(cfg shared.IdentityConfig, client *http.Client) *Provider {
	if client == nil {
		client = http.DefaultClient
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	tokenEndpoint := cfg.TokenEndpoint
	if tokenEndpoint == "" {
		tokenEndpoint = defaultTokenEndpoint
	}

	return &Provider{
		apiKey:        cfg.APIKey,
		endpoint:      endpoint,
		tokenEndpoint: tokenEndpoint,
		httpClient:    client,
	}
}

type credentialResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// SignUp creates a new email/password account and returns its first credential.
func (p *Provider) SignUp(ctx context.Context, email, password string) (*Credential, error) {
	return p.exchange(ctx, "accounts:signUp", email, password)
}

// SignIn authenticates an existing account.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*Credential, error) {
	return p.exchange(ctx, "accounts:signInWithPassword", email, password)
}

func (p *Provider) exchange(ctx context.Context, verb, email, password string) (*Credential, error) {
	body := map[string]any{"email": email, "password": password, "returnSecureToken": true}
	var result credentialResponse
	if err := p.post(ctx, fmt.Sprintf("%s/%s?key=%s", p.endpoint, verb, p.apiKey), body, &result); err != nil {
		return nil, err
	}

	cred := &Credential{
		UID:          result.LocalID,
		Email:        result.Email,
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
		ExpiresAt:    expiry(result.ExpiresIn),
	}

	// Verification status is only available via lookup; a failed lookup is
	// not fatal, the flag just stays false until the next refresh.
	if verified, err := p.lookupVerified(ctx, result.IDToken); err == nil {
		cred.EmailVerified = verified
	}

	return cred, nil
}

// Refresh exchanges a refresh token for a fresh ID token.
func (p *Provider) Refresh(ctx context.Context, refreshToken string) (*Credential, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	endpoint := fmt.Sprintf("%s/token?key=%s", p.tokenEndpoint, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrRefreshFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", shared.ErrRefreshFailed, decodeProviderError(resp))
	}

	var result struct {
		UserID       string `json:"user_id"`
		IDToken      string `json:"id_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    string `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &Credential{
		UID:          result.UserID,
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
		ExpiresAt:    expiry(result.ExpiresIn),
	}, nil
}

// lookupVerified fetches the email-verified flag for the account behind the token.
func (p *Provider) lookupVerified(ctx context.Context, idToken string) (bool, error) {
	var result struct {
		Users []struct {
			EmailVerified bool `json:"emailVerified"`
		} `json:"users"`
	}
	endpoint := fmt.Sprintf("%s/accounts:lookup?key=%s", p.endpoint, p.apiKey)
	if err := p.post(ctx, endpoint, map[string]any{"idToken": idToken}, &result); err != nil {
		return false, err
	}
	if len(result.Users) == 0 {
		return false, fmt.Errorf("account not found")
	}
	return result.Users[0].EmailVerified, nil
}

func (p *Provider) post(ctx context.Context, endpoint string, body any, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(payload)))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", shared.ErrAuthFailed, decodeProviderError(resp))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// decodeProviderError extracts the provider's error code and maps the common
// ones to readable text. The raw code passes through for anything unmapped.
func decodeProviderError(resp *http.Response) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error.Message == "" {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}

	switch code := body.Error.Message; code {
	case "EMAIL_EXISTS":
		return "an account already exists for this email"
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return "incorrect email or password"
	case "USER_DISABLED":
		return "this account has been disabled"
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return "too many attempts, try again later"
	default:
		if strings.HasPrefix(code, "WEAK_PASSWORD") {
			return "password is too weak"
		}
		return code
	}
}

// expiry converts the provider's lifetime-in-seconds string to a deadline.
func expiry(expiresIn string) time.Time {
	seconds, err := strconv.Atoi(expiresIn)
	if err != nil || seconds <= 0 {
		seconds = 3600
	}
	return time.Now().Add(time.Duration(seconds) * time.Second)
}
