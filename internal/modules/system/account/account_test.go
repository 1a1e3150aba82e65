package account

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestVerifyPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("ch4mpagne-secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	if err := verifyPassword(string(hash), "ch4mpagne-secret"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}

	err = verifyPassword(string(hash), "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}

	err = verifyPassword("not-a-bcrypt-hash", "anything")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("malformed hash error = %v, want ErrInvalidCredentials", err)
	}
}
