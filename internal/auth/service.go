// Package auth handles admin authentication with a configured credential pair.
package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is how long an issued admin token stays valid.
const tokenTTL = 24 * time.Hour

// ErrInvalidCredentials is returned when username or password do not match.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrNotConfigured is returned when the server has no admin credentials set.
var ErrNotConfigured = errors.New("admin credentials not configured")

// Service validates the admin credential pair and issues bearer tokens.
type Service struct {
	username  string
	password  string
	jwtSecret string
}

// NewService creates an auth Service for the configured credentials.
func NewService(username, password, jwtSecret string) *Service {
	return &Service{username: username, password: password, jwtSecret: jwtSecret}
}

// Login checks the credential pair and returns a signed token on success.
func (s *Service) Login(username, password string) (string, error) {
	if s.username == "" || s.password == "" {
		return "", ErrNotConfigured
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(username)
}

// issueToken creates a signed JWT carrying the username as its only
// identity claim.
func (s *Service) issueToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
