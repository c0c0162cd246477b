// internal/token/token.go
package token

import (
	"errors"
	"fmt"
	"time"

	"job-board-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid covers every verification failure: bad signature, expiry,
// malformed payload, unexpected algorithm. Callers only need one outcome.
var ErrInvalid = errors.New("invalid token")

// Identity is the {subject, role} assertion a verified token carries.
// SubjectID is a string because the admin singleton has no stored record.
type Identity struct {
	SubjectID string
	Role      models.Role
}

// Claims embeds the role alongside the registered claim set.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and verifies signed, time-limited identity assertions.
// Expiry is the only lifecycle control; there is no refresh or revocation,
// so a demoted principal keeps access until the token runs out.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a token manager signing with the given HMAC secret.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting {subjectID, role} for the configured TTL.
func (m *Manager) Issue(subjectID string, role models.Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry and returns the embedded identity.
func (m *Manager) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalid
	}

	role := models.Role(claims.Role)
	if claims.Subject == "" || !role.Valid() {
		return nil, ErrInvalid
	}

	return &Identity{SubjectID: claims.Subject, Role: role}, nil
}
