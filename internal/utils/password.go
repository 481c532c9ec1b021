package utils

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type PasswordMode string

const (
	PasswordPlain  PasswordMode = "plain"
	PasswordBcrypt PasswordMode = "bcrypt"
)

// PasswordHasher turns a submitted password into its stored form and checks a
// login attempt against the stored form.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(stored, password string) error
}

var ErrPasswordMismatch = errors.New("password mismatch")

func NewPasswordHasher(mode PasswordMode) (PasswordHasher, error) {
	switch mode {
	case PasswordPlain, "":
		return plainHasher{}, nil
	case PasswordBcrypt:
		return bcryptHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password mode %q", mode)
	}
}

// plainHasher stores passwords verbatim (no hashing).
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return password, nil }

func (plainHasher) Check(stored, password string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

type bcryptHasher struct{}

func (bcryptHasher) Hash(password string) (string, error) {
	return HashPassword(password)
}

func (bcryptHasher) Check(stored, password string) error {
	if err := CheckPassword(stored, password); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
