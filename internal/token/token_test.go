package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonsuite/salon-scheduler/internal/token"
)

func TestSignAndVerify(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)

	salonID := uint(7)
	signed, err := svc.Sign(42, "ana@salon.test", "admin", &salonID)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ana@salon.test", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	require.NotNil(t, claims.SalonID)
	assert.Equal(t, uint(7), *claims.SalonID)
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := token.NewService("secret-a", time.Hour).Sign(1, "x@y.test", "stylist", nil)
	require.NoError(t, err)

	_, err = token.NewService("secret-b", time.Hour).Verify(signed)
	assert.Error(t, err)
}

func TestNonPositiveExpiryFallsBackToDefault(t *testing.T) {
	svc := token.NewService("test-secret", 0)

	signed, err := svc.Sign(1, "x@y.test", "stylist", nil)
	require.NoError(t, err)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerify_RejectsUnsignedToken(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": 1,
		"role":    "super_admin",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestSuperAdminClaimsHaveNoSalon(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)

	signed, err := svc.Sign(1, "root@salon.test", "super_admin", nil)
	require.NoError(t, err)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Nil(t, claims.SalonID)
}
