package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/SillyFizy/grow/internal/domain"
)

var errEmptyToken = errors.New("token is empty")

// refreshTokenBytes is the entropy of a raw refresh token.
const refreshTokenBytes = 32

// JWTManager signs and verifies HS256 access tokens and issues opaque
// refresh tokens. Only the SHA-256 hash of a refresh token is stored.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	parser    *jwt.Parser
	now       func() time.Time
}

// NewJWTManager creates a JWTManager. secret must be at least 32 characters;
// config validation enforces it.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
		now: time.Now,
	}
}

// accessClaims carries the user's role next to the registered claims so
// that admin checks need no database round trip.
type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// GenerateAccessToken signs a token for userID. role must be a known user
// role.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	if !domain.UserRole(role).IsValid() {
		return "", fmt.Errorf("sign token: unknown role %q", role)
	}

	now := m.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken verifies signature, issuer and expiry and returns the
// subject and role.
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, string, error) {
	if tokenString == "" {
		return uuid.Nil, "", errEmptyToken
	}

	var claims accessClaims
	if _, err := m.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}); err != nil {
		return uuid.Nil, "", fmt.Errorf("parse token: %w", err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid subject: %w", err)
	}
	if !domain.UserRole(claims.Role).IsValid() {
		return uuid.Nil, "", fmt.Errorf("invalid role claim %q", claims.Role)
	}

	return userID, claims.Role, nil
}

// GenerateRefreshToken returns a random URL-safe token for the client and
// its hash for storage.
func (m *JWTManager) GenerateRefreshToken() (raw string, hash string, err error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generate refresh token: %w", err)
	}

	raw = base64.RawURLEncoding.EncodeToString(b)
	return raw, HashToken(raw), nil
}

// HashToken is the hex SHA-256 of a refresh token.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}
