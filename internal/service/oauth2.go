package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const (
	// GoogleRegistrationID is the only registration linked to local accounts.
	GoogleRegistrationID = "google"
	// GoogleUserInfoURL is the OpenID Connect userinfo endpoint.
	GoogleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
)

// Provider is a registered OAuth2 client.
type Provider struct {
	RegistrationID string
	OAuth2         *oauth2.Config
	UserInfoURL    string
}

// NewGoogleProvider builds the Google registration.
func NewGoogleProvider(clientID, clientSecret, redirectURL string, scopes []string) Provider {
	return Provider{
		RegistrationID: GoogleRegistrationID,
		OAuth2: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     endpoints.Google,
		},
		UserInfoURL: GoogleUserInfoURL,
	}
}

// OAuth2Service runs the authorization-code flow and reconciles the
// resulting identity with local accounts.
type OAuth2Service struct {
	providers  map[string]Provider
	requests   repository.AuthorizationRequestRepo
	users      repository.UserRepo
	roles      repository.RoleRepo
	tokens     *TokenManager
	notifier   Notifier
	stateTTL   time.Duration
	httpClient *http.Client
	now        func() time.Time
}

func NewOAuth2Service(
	providers []Provider,
	requests repository.AuthorizationRequestRepo,
	users repository.UserRepo,
	roles repository.RoleRepo,
	tokens *TokenManager,
	notifier Notifier,
	stateTTL time.Duration,
) *OAuth2Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	byID := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byID[p.RegistrationID] = p
	}
	return &OAuth2Service{
		providers: byID,
		requests:  requests,
		users:     users,
		roles:     roles,
		tokens:    tokens,
		notifier:  notifier,
		stateTTL:  stateTTL,
		now:       time.Now,
	}
}

// WithHTTPClient sets the client used for token exchange and userinfo.
func (s *OAuth2Service) WithHTTPClient(c *http.Client) *OAuth2Service {
	s.httpClient = c
	return s
}

// AuthorizationURL starts a login: it stores a fresh state with a PKCE
// verifier and returns the provider URL to redirect the browser to.
func (s *OAuth2Service) AuthorizationURL(ctx context.Context, registrationID string) (string, error) {
	p, ok := s.providers[registrationID]
	if !ok {
		return "", ErrUnknownProvider
	}

	verifier := oauth2.GenerateVerifier()
	req := models.AuthorizationRequest{
		State:          uuid.NewString(),
		RegistrationID: registrationID,
		CodeVerifier:   verifier,
		ExpiresAt:      s.now().Add(s.stateTTL),
	}
	if err := s.requests.Save(ctx, req); err != nil {
		return "", fmt.Errorf("save authorization request: %w", err)
	}

	return p.OAuth2.AuthCodeURL(req.State, oauth2.S256ChallengeOption(verifier)), nil
}

// CompleteLogin handles the provider callback. The stored state is consumed
// whether or not the rest of the exchange succeeds.
func (s *OAuth2Service) CompleteLogin(ctx context.Context, registrationID, state, code string) (*Session, error) {
	p, ok := s.providers[registrationID]
	if !ok {
		return nil, ErrUnknownProvider
	}
	if state == "" || code == "" {
		return nil, ErrMissingCode
	}

	req, err := s.requests.Take(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("load authorization request: %w", err)
	}
	if req == nil || req.RegistrationID != registrationID || req.Expired(s.now()) {
		return nil, ErrInvalidState
	}

	if s.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	}
	tok, err := p.OAuth2.Exchange(ctx, code, oauth2.VerifierOption(req.CodeVerifier))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenExchange, err)
	}

	attrs, err := fetchUserInfo(ctx, p, tok)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserInfo, err)
	}

	return s.LoginSuccess(ctx, OAuth2User{
		RegistrationID: registrationID,
		Subject:        attrString(attrs, "sub"),
		Email:          attrString(attrs, "email"),
		Name:           attrString(attrs, "name"),
		Attributes:     attrs,
	})
}

func fetchUserInfo(ctx context.Context, p Provider, tok *oauth2.Token) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.UserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.OAuth2.Client(ctx, tok).Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	attrs := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&attrs); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	return attrs, nil
}
