package services

import (
	"errors"
	"testing"
)

// Without ADMIN_PASSWORD or ADMIN_PASSWORD_HASH configured, no credential
// pair may ever produce a token.
func TestAuthService_RefusesWhenNoPasswordConfigured(t *testing.T) {
	svc := NewAuthService()

	for _, password := range []string{"", "guess", "admin"} {
		_, err := svc.Login("admin@laziz.local", password)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login with password %q: got %v, want ErrInvalidCredentials", password, err)
		}
	}
}
