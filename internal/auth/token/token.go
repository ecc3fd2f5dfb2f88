// Package token issues and verifies the HMAC signed bearer tokens handed out
// by POST /token. Both operations take the current time explicitly.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL applies when the configured lifetime is not positive.
const DefaultTTL = 15 * time.Minute

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
	ErrEmptySecret          = errors.New("signing secret is empty")
	ErrMissingSubject       = errors.New("token has no subject")
	ErrExpired              = errors.New("token expired")
	ErrInvalid              = errors.New("token invalid")
)

// Signer holds the symmetric key material shared by Issue and Parse.
type Signer struct {
	secret []byte
	method jwt.SigningMethod
}

// NewSigner accepts HS256, HS384 or HS512.
func NewSigner(secret, algorithm string) (*Signer, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrEmptySecret
	}
	method, ok := jwt.GetSigningMethod(strings.ToUpper(strings.TrimSpace(algorithm))).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
	return &Signer{secret: []byte(secret), method: method}, nil
}

func (s *Signer) Algorithm() string { return s.method.Alg() }

// Issue signs a token for subject valid from now for ttl.
func (s *Signer) Issue(subject, id string, now time.Time, ttl time.Duration) (string, time.Time, error) {
	if strings.TrimSpace(subject) == "" {
		return "", time.Time{}, ErrMissingSubject
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	expiresAt := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse verifies signature, algorithm and expiry as of now and returns the
// subject.
func (s *Signer) Parse(raw string, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !parsed.Valid {
		return "", ErrInvalid
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}
