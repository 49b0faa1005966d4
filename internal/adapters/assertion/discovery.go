package assertion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

const DefaultIssuer = "https://accounts.google.com"

var defaultScopes = []string{oidc.ScopeOpenID, "email", "profile"}

// ProviderSettings is shared by the browser and device flows.
type ProviderSettings struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	Scopes       []string
	HTTPClient   *http.Client
}

func (s ProviderSettings) withClient(ctx context.Context) context.Context {
	if s.HTTPClient == nil {
		return ctx
	}
	return oidc.ClientContext(ctx, s.HTTPClient)
}

// discover loads the issuer metadata and returns an oauth2 config pointing
// at its endpoints.
func (s ProviderSettings) discover(ctx context.Context) (*oauth2.Config, error) {
	if strings.TrimSpace(s.ClientID) == "" {
		return nil, errors.New("oauth client id is required")
	}

	issuer := strings.TrimRight(strings.TrimSpace(s.Issuer), "/")
	if issuer == "" {
		issuer = DefaultIssuer
	}

	provider, err := oidc.NewProvider(s.withClient(ctx), issuer)
	if err != nil {
		return nil, fmt.Errorf("discover identity provider %s: %w", issuer, err)
	}

	scopes := s.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}

	endpoint := provider.Endpoint()
	if endpoint.DeviceAuthURL == "" {
		var claims struct {
			DeviceAuthorizationEndpoint string `json:"device_authorization_endpoint"`
		}
		if err := provider.Claims(&claims); err == nil {
			endpoint.DeviceAuthURL = claims.DeviceAuthorizationEndpoint
		}
	}

	return &oauth2.Config{
		ClientID:     s.ClientID,
		ClientSecret: s.ClientSecret,
		Endpoint:     endpoint,
		Scopes:       scopes,
	}, nil
}

// assertionFromToken prefers the OIDC id_token, which is what the schedule
// API validates, and falls back to the access token.
func assertionFromToken(token *oauth2.Token) (string, error) {
	if token == nil {
		return "", errors.New("token response is empty")
	}
	if idToken, ok := token.Extra("id_token").(string); ok && idToken != "" {
		return idToken, nil
	}
	if token.AccessToken != "" {
		return token.AccessToken, nil
	}
	return "", errors.New("token response missing id_token and access_token")
}
