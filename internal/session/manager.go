// Package session implements the relying-party core of the authorization
// code login flow: the store of in-flight login sessions and the manager
// that builds the provider redirect and finalises the callback.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/zitadel/oidc/v3/pkg/oidc"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openfed/login-manager/internal/config"
	"github.com/openfed/login-manager/internal/serviceerr"
	"github.com/openfed/login-manager/internal/user"
)

// TokenExchanger is the provider-facing collaborator: code-for-token
// exchange and profile fetch.
type TokenExchanger interface {
	ExchangeCode(ctx context.Context, code string) (string, error)
	FetchUserInfo(ctx context.Context, accessToken string) (*oidc.UserInfo, error)
}

type Manager struct {
	sessions Store
	provider TokenExchanger
	users    user.Resolver
	source   Source

	authorizeURL *url.URL
	callbackURL  string
	clientID     string
	scope        string

	sessionCookieTemplate config.CookieTemplate
}

func NewManager(cfg *config.Login, sessions Store, provider TokenExchanger, users user.Resolver) (*Manager, error) {
	authorizeURL, err := url.Parse(cfg.AuthorizeURL)
	if err != nil {
		return nil, fmt.Errorf("parsing authorize URL: %w", err)
	}

	return &Manager{
		sessions:              sessions,
		provider:              provider,
		users:                 users,
		authorizeURL:          authorizeURL,
		callbackURL:           cfg.CallbackURL,
		clientID:              cfg.ClientAuth.ClientID,
		scope:                 cfg.Scope,
		sessionCookieTemplate: cfg.SessionCookieTemplate,
	}, nil
}

// MakeAuthURI creates a login session and returns the provider authorization
// URI together with the session identifier the caller must set as a cookie
// on the redirect response.
func (m *Manager) MakeAuthURI(ctx context.Context, clientRedirectURL string) (string, string, error) {
	state := m.source.State()

	sessionID, err := m.sessions.Create(clientRedirectURL, state)
	if err != nil {
		return "", "", fmt.Errorf("creating login session: %w", err)
	}

	u := *m.authorizeURL
	q := u.Query()
	q.Set("response_type", "code")
	q.Set("scope", m.scope)
	q.Set("client_id", m.clientID)
	q.Set("state", state)
	q.Set("redirect_uri", m.callbackURL)
	u.RawQuery = q.Encode()

	slogctx.Debug(ctx, "Created login session", "session_id", sessionID)

	return u.String(), sessionID, nil
}

// Result is a finalised login: the resolved account and where to send the
// browser next.
type Result struct {
	UserID            string
	ClientRedirectURL string
}

// FinaliseLogin runs the callback pipeline: consume the session, check the
// anti-forgery state, exchange the code, fetch the profile and resolve the
// account. The session is gone after this call whatever the outcome, so a
// replayed callback fails with an expired session.
func (m *Manager) FinaliseLogin(ctx context.Context, sessionID, code, state string) (Result, error) {
	sess, ok := m.sessions.Consume(sessionID)
	if !ok {
		return Result{}, serviceerr.ErrSessionExpired
	}

	if sess.State != state {
		return Result{}, serviceerr.ErrStateMismatch
	}

	accessToken, err := m.provider.ExchangeCode(ctx, code)
	if err != nil {
		return Result{}, errors.Join(serviceerr.ErrTokenFetch, err)
	}

	slogctx.Info(ctx, "Exchanged the auth code for an access token")

	info, err := m.provider.FetchUserInfo(ctx, accessToken)
	if err != nil {
		return Result{}, errors.Join(serviceerr.ErrUserInfoFetch, err)
	}

	localpart := strings.ToLower(info.PreferredUsername)
	if localpart == "" {
		return Result{}, serviceerr.ErrMissingUsername
	}

	ctx = slogctx.With(ctx, "localpart", localpart)

	userID, found, err := m.users.Lookup(ctx, localpart)
	if err != nil {
		return Result{}, errors.Join(serviceerr.ErrUnknown, fmt.Errorf("looking up user: %w", err))
	}

	if !found {
		displayName := info.Name
		if displayName == "" {
			displayName = localpart
		}

		var emails []string
		if email := string(info.Email); email != "" {
			emails = []string{email}
		}

		userID, err = m.users.Register(ctx, localpart, displayName, emails)
		if err != nil {
			return Result{}, errors.Join(serviceerr.ErrUnknown, fmt.Errorf("registering user: %w", err))
		}

		slogctx.Info(ctx, "Registered a new user", "user_id", userID)
	}

	return Result{UserID: userID, ClientRedirectURL: sess.ClientRedirectURL}, nil
}

// SessionCookieName is the cookie the callback endpoint reads the session
// identifier from.
func (m *Manager) SessionCookieName() string {
	return m.sessionCookieTemplate.Name
}

func (m *Manager) MakeSessionCookie(ctx context.Context, sessionID string) (*http.Cookie, error) {
	sessionCookie := m.sessionCookieTemplate.ToCookie(sessionID)

	if err := sessionCookie.Valid(); err != nil {
		return nil, fmt.Errorf("invalid session cookie: %w", err)
	}

	if !sessionCookie.Secure {
		slogctx.Warn(ctx, "Session cookie is not marked as Secure; this is not recommended in production environments")
	}
	if !sessionCookie.HttpOnly {
		slogctx.Warn(ctx, "Session cookie is not marked as HttpOnly; this is not recommended in production environments")
	}

	return sessionCookie, nil
}
