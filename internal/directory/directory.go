// Package directory is an in-memory user directory. It stands in for the
// identity server's persistent account store when the login manager runs as
// a standalone service; embedders supply their own user.Resolver instead.
package directory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/openfed/login-manager/internal/user"
)

type Account struct {
	ID          string
	Localpart   string
	DisplayName string
	Emails      []string
}

type Directory struct {
	mu       sync.Mutex
	accounts map[string]Account
}

var _ = user.Resolver(&Directory{})

func New() *Directory {
	return &Directory{accounts: make(map[string]Account)}
}

func (d *Directory) Lookup(_ context.Context, localpart string) (string, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	account, ok := d.accounts[localpart]

	return account.ID, ok, nil
}

func (d *Directory) Register(_ context.Context, localpart, displayName string, emails []string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Two callbacks racing on the same localpart must not create two
	// accounts; the second registration resolves to the first.
	if account, ok := d.accounts[localpart]; ok {
		return account.ID, nil
	}

	account := Account{
		ID:          uuid.NewString(),
		Localpart:   localpart,
		DisplayName: displayName,
		Emails:      append([]string(nil), emails...),
	}
	d.accounts[localpart] = account

	return account.ID, nil
}

// Get returns the stored account for a localpart.
func (d *Directory) Get(localpart string) (Account, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	account, ok := d.accounts[localpart]

	return account, ok
}
