package sessionmock

import (
	"context"
	"sync"

	"github.com/zitadel/oidc/v3/pkg/oidc"

	"github.com/openfed/login-manager/internal/session"
)

type ExchangerOption func(*Exchanger)

// Exchanger is a canned TokenExchanger that records how far the pipeline
// got.
type Exchanger struct {
	mu sync.Mutex

	accessToken string
	userInfo    *oidc.UserInfo

	exchangeErr, userInfoErr error

	exchangeCalls, userInfoCalls int
}

var _ = session.TokenExchanger(&Exchanger{})

func WithAccessToken(token string) ExchangerOption {
	return func(e *Exchanger) { e.accessToken = token }
}

func WithUserInfo(info *oidc.UserInfo) ExchangerOption {
	return func(e *Exchanger) { e.userInfo = info }
}

func WithExchangeError(err error) ExchangerOption {
	return func(e *Exchanger) { e.exchangeErr = err }
}

func WithUserInfoError(err error) ExchangerOption {
	return func(e *Exchanger) { e.userInfoErr = err }
}

func NewExchanger(opts ...ExchangerOption) *Exchanger {
	e := &Exchanger{
		accessToken: "the-access-token",
		userInfo:    &oidc.UserInfo{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	return e
}

func (e *Exchanger) ExchangeCode(_ context.Context, _ string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.exchangeCalls++
	if e.exchangeErr != nil {
		return "", e.exchangeErr
	}

	return e.accessToken, nil
}

func (e *Exchanger) FetchUserInfo(_ context.Context, _ string) (*oidc.UserInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.userInfoCalls++
	if e.userInfoErr != nil {
		return nil, e.userInfoErr
	}

	return e.userInfo, nil
}

func (e *Exchanger) ExchangeCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.exchangeCalls
}

func (e *Exchanger) UserInfoCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.userInfoCalls
}
