package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
)

// Claims carried in a session token. SalonID is nil for super admins.
type Claims struct {
	UserID  uint   `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	SalonID *uint  `json:"salon_id,omitempty"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	expiry time.Duration
}

func NewService(secret string, expiry time.Duration) *Service {
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &Service{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (s *Service) Sign(userID uint, email, role string, salonID *uint) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:  userID,
		Email:   email,
		Role:    role,
		SalonID: salonID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", apperr.Internal("token_sign_failed", err)
	}
	return signed, nil
}

func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, apperr.Authentication("invalid_token", "invalid or expired token")
	}

	return claims, nil
}
