// Package config defines the necessary types to configure the application.
// An example config file config.yaml is provided in the repository.
package config

import (
	"time"

	"github.com/openkcm/common-sdk/pkg/commoncfg"
)

type Config struct {
	commoncfg.BaseConfig `mapstructure:",squash" yaml:",inline"`

	HTTP  HTTPServer `yaml:"http"`
	Login Login      `yaml:"login"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" default:":8080"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" default:"5s"`
}

// Login configures the single, pre-registered identity provider and the
// lifetime of in-flight login sessions.
type Login struct {
	AuthorizeURL string `yaml:"authorizeURL"`
	TokenURL     string `yaml:"tokenURL"`
	UserInfoURL  string `yaml:"userInfoURL"`
	CallbackURL  string `yaml:"callbackURL"`
	Scope        string `yaml:"scope" default:"openid profile email"`

	ClientAuth ClientAuth `yaml:"clientAuth"`

	SessionValidity time.Duration `yaml:"sessionValidity" default:"15m"`
	SweepInterval   time.Duration `yaml:"sweepInterval" default:"1m"`

	SessionCookieTemplate CookieTemplate `yaml:"sessionCookie"`
}

type ClientAuth struct {
	// Type is either "public" or "client_secret". With "client_secret" the
	// token request authenticates with HTTP Basic credentials.
	Type         string              `yaml:"type" default:"public"`
	ClientID     string              `yaml:"clientID"`
	ClientSecret commoncfg.SourceRef `yaml:"clientSecret"`
}

type CookieSameSite string

const (
	CookieSameSiteNone   CookieSameSite = "none"
	CookieSameSiteLax    CookieSameSite = "lax"
	CookieSameSiteStrict CookieSameSite = "strict"
)

type CookieTemplate struct {
	Name     string         `yaml:"name" default:"sso_login_session"`
	MaxAge   int            `yaml:"maxAge"`
	Path     string         `yaml:"path" default:"/"`
	Domain   string         `yaml:"domain"`
	Secure   bool           `yaml:"secure" default:"true"`
	HTTPOnly bool           `yaml:"httpOnly" default:"true"`
	SameSite CookieSameSite `yaml:"sameSite" default:"lax"`
}
