package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yoockh/jobboard/internal/models"
)

const TokenType = "bearer"

var ErrInvalidToken = errors.New("invalid token")

// Tokens issues the bearer credential at login and maps a presented
// credential back to the caller's email.
type Tokens interface {
	Issue(u *models.User) (string, error)
	Resolve(raw string) (email string, err error)
}

func NewTokens(mode, secret, issuer string, ttl time.Duration) (Tokens, error) {
	switch strings.ToLower(mode) {
	case "email", "":
		return EmailTokens{}, nil
	case "jwt":
		if secret == "" {
			return nil, errors.New("jwt token mode requires a secret")
		}
		return &JWTTokens{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}, nil
	default:
		return nil, fmt.Errorf("unknown token mode %q", mode)
	}
}

// EmailTokens is the legacy scheme: the credential is the email itself. It is
// unsigned and never expires; anyone who knows an email can act as that user.
type EmailTokens struct{}

func (EmailTokens) Issue(u *models.User) (string, error) { return u.Email, nil }

func (EmailTokens) Resolve(raw string) (string, error) { return raw, nil }

// JWTTokens issues HS256 tokens with the email as subject.
type JWTTokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func (t *JWTTokens) Issue(u *models.User) (string, error) {
	now := t.now()
	// role is looked up per request, so it is not carried in the token
	c := jwt.RegisteredClaims{
		Subject:   u.Email,
		Issuer:    t.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
}

func (t *JWTTokens) Resolve(raw string) (string, error) {
	c := &jwt.RegisteredClaims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	}
	if t.issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.issuer))
	}

	tok, err := jwt.ParseWithClaims(raw, c, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, opts...)
	if err != nil || tok == nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	if c.Subject == "" {
		return "", ErrInvalidToken
	}
	return c.Subject, nil
}
