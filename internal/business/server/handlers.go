package server

import (
	"net/http"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openfed/login-manager/internal/serviceerr"
	"github.com/openfed/login-manager/internal/session"
	"github.com/openfed/login-manager/internal/user"
)

// loginServer hosts the two endpoints of the login flow: the redirect that
// starts it and the callback the provider sends the browser back to.
type loginServer struct {
	manager   *session.Manager
	completer user.Completer
}

func newLoginServer(manager *session.Manager, completer user.Completer) *loginServer {
	return &loginServer{manager: manager, completer: completer}
}

// Redirect handles an incoming request to /login/sso/redirect.
func (s *loginServer) Redirect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientRedirectURL := r.URL.Query().Get("redirectUrl")
	if clientRedirectURL == "" {
		respond(w, "Request is missing the redirectUrl parameter.", http.StatusBadRequest)
		return
	}

	authURI, sessionID, err := s.manager.MakeAuthURI(ctx, clientRedirectURL)
	if err != nil {
		slogctx.Error(ctx, "Failed to build the auth URI", "error", err)
		respondError(w, serviceerr.ErrUnknown)

		return
	}

	sessionCookie, err := s.manager.MakeSessionCookie(ctx, sessionID)
	if err != nil {
		slogctx.Error(ctx, "Failed to create the session cookie", "error", err)
		respondError(w, serviceerr.ErrUnknown)

		return
	}

	http.SetCookie(w, sessionCookie)
	http.Redirect(w, r, authURI, http.StatusFound)
}

// Callback handles an incoming request to /login/sso/callback. The code,
// state and session cookie are all required before anything touches the
// network.
func (s *loginServer) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")

	var sessionID string
	if cookie, err := r.Cookie(s.manager.SessionCookieName()); err == nil {
		sessionID = cookie.Value
	}

	if code == "" || state == "" || sessionID == "" {
		respondError(w, serviceerr.ErrMissingParameter)
		return
	}

	result, err := s.manager.FinaliseLogin(ctx, sessionID, code, state)
	if err != nil {
		slogctx.Error(ctx, "Failed to finalise the login", "error", err)
		respondError(w, serviceerr.From(err))

		return
	}

	slogctx.Info(ctx, "Login finalised", "user_id", result.UserID)

	s.completer.CompleteLogin(w, r, result.UserID, result.ClientRedirectURL)
}

// RedirectCompleter finishes a login by sending the browser straight to the
// client redirect URL. Deployments embedding this module supply a Completer
// that issues their own credentials before redirecting.
type RedirectCompleter struct{}

var _ = user.Completer(RedirectCompleter{})

func (RedirectCompleter) CompleteLogin(w http.ResponseWriter, r *http.Request, _ string, clientRedirectURL string) {
	http.Redirect(w, r, clientRedirectURL, http.StatusFound)
}
