package assertion

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// EmailFromIDToken reads the email claim without verifying the signature.
// The schedule API verifies the token; this is only used for display.
func EmailFromIDToken(idToken string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return "", fmt.Errorf("parse id token: %w", err)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", errors.New("id token has no email claim")
	}
	return email, nil
}
