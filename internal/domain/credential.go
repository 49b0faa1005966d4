package domain

import (
	"strings"
	"time"
)

const DefaultTokenType = "Bearer"

type Credential struct {
	Token     string
	TokenType string
	// ExpiresIn is the lifetime in seconds reported by the server, nil when absent.
	ExpiresIn *int64
}

func (c Credential) AuthorizationHeader() string {
	tokenType := strings.TrimSpace(c.TokenType)
	if tokenType == "" {
		tokenType = DefaultTokenType
	}
	return tokenType + " " + c.Token
}

func (c Credential) ExpiresAt(issuedAt time.Time) (time.Time, bool) {
	if c.ExpiresIn == nil || *c.ExpiresIn <= 0 {
		return time.Time{}, false
	}
	return issuedAt.Add(time.Duration(*c.ExpiresIn) * time.Second), true
}

type AuthConfig struct {
	IdentityProviderClientID string `json:"identityProviderClientId"`
	Logoff                   bool   `json:"logoff"`
	TimeoutSeconds           int    `json:"timeoutSeconds"`
}
