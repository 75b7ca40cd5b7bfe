// Package user declares the collaborator interfaces the login pipeline
// needs from the surrounding identity server: the account directory and the
// mechanism that finalises an authenticated browser session.
package user

import (
	"context"
	"net/http"
)

type Resolver interface {
	// Lookup reports whether an account with the given localpart already
	// exists and returns its identifier.
	Lookup(ctx context.Context, localpart string) (userID string, found bool, err error)

	// Register creates a new account for the localpart and returns its
	// identifier. The display name and email list come from the provider
	// profile.
	Register(ctx context.Context, localpart, displayName string, emails []string) (string, error)
}

// Completer finishes a login once the callback pipeline resolved an account.
// It owns the response written to the browser; after it returns the request
// is done.
type Completer interface {
	CompleteLogin(w http.ResponseWriter, r *http.Request, userID, clientRedirectURL string)
}
