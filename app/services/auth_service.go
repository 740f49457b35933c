package services

import (
	"crypto/subtle"
	"errors"

	"github.com/shashiranjanraj/laziz/config"
	"github.com/shashiranjanraj/laziz/pkg/auth"
)

// ErrInvalidCredentials is returned on any email/password mismatch. The
// message is deliberately identical for a bad email and a bad password.
var ErrInvalidCredentials = errors.New("services: invalid credentials")

// AuthService signs in the single admin account configured through the
// environment. There is no user collection; the restaurant has one admin.
type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login checks the supplied credentials against ADMIN_EMAIL plus either
// ADMIN_PASSWORD_HASH (bcrypt, preferred) or plain ADMIN_PASSWORD, and
// returns a signed 24-hour admin token.
func (s *AuthService) Login(email, password string) (string, error) {
	wantEmail := config.AdminEmail()
	if wantEmail == "" {
		return "", ErrInvalidCredentials
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(wantEmail)) == 1

	passwordOK := false
	if hash := config.AdminPasswordHash(); hash != "" {
		passwordOK = auth.CheckPassword(hash, password)
	} else if want := config.AdminPassword(); want != "" {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(want)) == 1
	}

	if !emailOK || !passwordOK {
		return "", ErrInvalidCredentials
	}

	return auth.GenerateToken(email, "admin")
}
