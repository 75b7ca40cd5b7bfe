package usermock

import (
	"context"
	"sync"

	"github.com/openfed/login-manager/internal/user"
)

type ResolverOption func(*Resolver)

// Registration records one Register call for test assertions.
type Registration struct {
	Localpart   string
	DisplayName string
	Emails      []string
}

type Resolver struct {
	mu    sync.Mutex
	users map[string]string

	lookupErr, registerErr error

	registered []Registration
}

var _ = user.Resolver(&Resolver{})

func WithUser(localpart, userID string) ResolverOption {
	return func(r *Resolver) { r.users[localpart] = userID }
}

func WithLookupError(err error) ResolverOption {
	return func(r *Resolver) { r.lookupErr = err }
}

func WithRegisterError(err error) ResolverOption {
	return func(r *Resolver) { r.registerErr = err }
}

func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{users: make(map[string]string)}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

func (r *Resolver) Lookup(_ context.Context, localpart string) (string, bool, error) {
	if r.lookupErr != nil {
		return "", false, r.lookupErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.users[localpart]

	return userID, ok, nil
}

func (r *Resolver) Register(_ context.Context, localpart, displayName string, emails []string) (string, error) {
	if r.registerErr != nil {
		return "", r.registerErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.registered = append(r.registered, Registration{
		Localpart:   localpart,
		DisplayName: displayName,
		Emails:      emails,
	})

	userID := "@" + localpart
	r.users[localpart] = userID

	return userID, nil
}

// Registered returns the Register calls seen so far.
func (r *Resolver) Registered() []Registration {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Registration(nil), r.registered...)
}
