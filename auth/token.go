package auth

import (
	"errors"
	"time"

	"github.com/o1egl/paseto"
)

const (
	// CookieName carries the admin token between requests.
	CookieName = "admin_token"
	// tokenFooter binds tokens to this service.
	tokenFooter = "securecam-admin"
	// tokenTTL is how long a login stays valid.
	tokenTTL = 24 * time.Hour
)

var errInvalidToken = errors.New("invalid token")

// IssueToken mints a paseto v2 token for a logged-in admin. The username
// claim is what the middleware checks against the configured principal set.
func IssueToken(secret []byte, adminID, username string) (string, error) {
	now := time.Now()
	jsonToken := paseto.JSONToken{
		Subject:    adminID,
		IssuedAt:   now,
		Expiration: now.Add(tokenTTL),
	}
	jsonToken.Set("username", username)
	return paseto.NewV2().Encrypt(secret, jsonToken, tokenFooter)
}

// VerifyToken decrypts and validates a token, returning the username claim.
func VerifyToken(secret []byte, token string) (string, error) {
	var jsonToken paseto.JSONToken
	var footer string
	if err := paseto.NewV2().Decrypt(token, secret, &jsonToken, &footer); err != nil {
		return "", err
	}
	if footer != tokenFooter {
		return "", errInvalidToken
	}
	if err := jsonToken.Validate(paseto.ValidAt(time.Now())); err != nil {
		return "", err
	}
	username := jsonToken.Get("username")
	if username == "" {
		return "", errInvalidToken
	}
	return username, nil
}
