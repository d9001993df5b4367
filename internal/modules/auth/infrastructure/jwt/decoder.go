package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/saransh1220/artist-console/internal/modules/auth/domain"
)

// Claims is the payload the backend puts in access tokens
type Claims struct {
	Role   string `json:"role"`
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Decode parses the token payload without verifying the signature or expiry.
// Anything that does not parse yields nil, which callers treat as logged out.
func Decode(raw string) *domain.DecodedToken {
	if raw == "" {
		return nil
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil
	}

	token := &domain.DecodedToken{
		Role:   claims.Role,
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
	}
	if claims.IssuedAt != nil {
		token.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		token.Expiry = claims.ExpiresAt.Time
	}
	return token
}

// GenerateToken signs an HS256 token carrying the console claims. The console
// never verifies tokens; this exists for the mock backend and tests.
func GenerateToken(secret string, duration time.Duration, userID int, role, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:   role,
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
