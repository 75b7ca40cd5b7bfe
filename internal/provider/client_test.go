package provider_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfed/login-manager/internal/provider"
)

func TestExchangeCode(t *testing.T) {
	tests := []struct {
		name         string
		clientSecret string
		handler      http.HandlerFunc
		wantToken    string
		wantErr      string
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
				assert.Equal(t, "the-code", r.PostForm.Get("code"))
				assert.Equal(t, "https://id.example.com/login/sso/callback", r.PostForm.Get("redirect_uri"))
				assert.Equal(t, "my-client-id", r.PostForm.Get("client_id"))

				_, _, ok := r.BasicAuth()
				assert.False(t, ok, "public client must not send credentials")

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"access_token": "the-access-token", "token_type": "Bearer", "expires_in": 3600}`))
			},
			wantToken: "the-access-token",
		},
		{
			name:         "basic auth with client secret",
			clientSecret: "s3cret",
			handler: func(w http.ResponseWriter, r *http.Request) {
				username, password, ok := r.BasicAuth()
				require.True(t, ok)
				assert.Equal(t, "my-client-id", username)
				assert.Equal(t, "s3cret", password)

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"access_token": "the-access-token", "token_type": "Bearer"}`))
			},
			wantToken: "the-access-token",
		},
		{
			name: "provider error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error": "invalid_grant"}`))
			},
			wantErr: "token exchange failed with status: 400",
		},
		{
			name: "missing access token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"token_type": "Bearer"}`))
			},
			wantErr: "missing access_token",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
			wantErr: "decoding response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := provider.NewClient(server.Client(), provider.Config{
				TokenURL:     server.URL + "/oauth2/token",
				ClientID:     "my-client-id",
				ClientSecret: tt.clientSecret,
				RedirectURI:  "https://id.example.com/login/sso/callback",
			})

			token, err := client.ExchangeCode(t.Context(), "the-code")
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestFetchUserInfo(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer the-access-token", r.Header.Get("Authorization"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"sub": "1234", "preferred_username": "Alice", "name": "Alice Liddell", "email": "alice@example.com"}`))
			},
		},
		{
			name: "provider error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			wantErr: "userinfo fetch failed with status: 401",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			},
			wantErr: "decoding response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := provider.NewClient(server.Client(), provider.Config{
				UserInfoURL: server.URL + "/oauth2/userinfo",
			})

			info, err := client.FetchUserInfo(t.Context(), "the-access-token")
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Alice", info.PreferredUsername)
			assert.Equal(t, "Alice Liddell", info.Name)
			assert.Equal(t, "alice@example.com", string(info.Email))
		})
	}
}
