// Package auth extracts identity claims from tokens minted by the
// authentication provider.
package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// UserIDFromToken pulls the user's record id out of a provider-issued token.
// The token was just handed to us by the provider over the authenticated
// connection, so its signature is not re-verified here; we only read the ID
// claim, which carries the full record id ("user:abc123").
func UserIDFromToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	raw, ok := claims["ID"].(string)
	if !ok || raw == "" {
		return "", fmt.Errorf("token has no ID claim")
	}

	id := raw
	if _, rest, found := strings.Cut(raw, ":"); found {
		id = rest
	}
	id = strings.Trim(id, "⟨⟩")
	if id == "" {
		return "", fmt.Errorf("token ID claim %q is malformed", raw)
	}
	return id, nil
}
