package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretKeyLen is the minimum length for the HS256 secret key.
const MinSecretKeyLen = 32

// Config holds JWT manager configuration.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  []string
	TTL       time.Duration
}

// Manager signs and verifies HS256 tokens. Safe for concurrent use.
type Manager struct {
	secretKey []byte
	issuer    string
	audience  []string
	ttl       time.Duration
}

// Claims is the JWT claims structure used by the service.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
