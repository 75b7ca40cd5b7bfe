package business

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/openkcm/common-sdk/pkg/commoncfg"

	"github.com/openfed/login-manager/internal/business/server"
	"github.com/openfed/login-manager/internal/config"
	"github.com/openfed/login-manager/internal/directory"
	"github.com/openfed/login-manager/internal/provider"
	"github.com/openfed/login-manager/internal/session"
)

// Main wires the login flow together and runs the public HTTP server until
// the context is cancelled.
func Main(ctx context.Context, cfg *config.Config) error {
	manager, err := initLoginManager(cfg)
	if err != nil {
		return fmt.Errorf("initialising the login manager: %w", err)
	}

	return server.StartHTTPServer(ctx, cfg, manager, server.RedirectCompleter{})
}

func initLoginManager(cfg *config.Config) (*session.Manager, error) {
	clientSecret, err := loadClientSecret(cfg)
	if err != nil {
		return nil, fmt.Errorf("loading client secret: %w", err)
	}

	providerClient := provider.NewClient(cleanhttp.DefaultPooledClient(), provider.Config{
		TokenURL:     cfg.Login.TokenURL,
		UserInfoURL:  cfg.Login.UserInfoURL,
		ClientID:     cfg.Login.ClientAuth.ClientID,
		ClientSecret: clientSecret,
		RedirectURI:  cfg.Login.CallbackURL,
	})

	store := session.NewMemoryStore(cfg.Login.SessionValidity, cfg.Login.SweepInterval)
	users := directory.New()

	manager, err := session.NewManager(&cfg.Login, store, providerClient, users)
	if err != nil {
		return nil, fmt.Errorf("creating login manager: %w", err)
	}

	return manager, nil
}

func loadClientSecret(cfg *config.Config) (string, error) {
	switch cfg.Login.ClientAuth.Type {
	case "client_secret":
		secret, err := commoncfg.LoadValueFromSourceRef(cfg.Login.ClientAuth.ClientSecret)
		if err != nil {
			return "", err
		}

		return string(secret), nil
	case "public":
		return "", nil
	default:
		return "", errors.New("unknown Client Auth type")
	}
}
