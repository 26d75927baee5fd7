package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register("admin", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	adminID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.NotZero(t, adminID)

	token, err = svc.Login("admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register("admin", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register("admin", "other")
	require.Error(t, err)
	assert.Equal(t, ClassStateConflict, ClassOf(err))
}

func TestAuthWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register("admin", "s3cret")
	require.NoError(t, err)

	_, err = svc.Login("admin", "wrong")
	require.Error(t, err)
	assert.Equal(t, ClassEligibility, ClassOf(err))

	_, err = svc.Login("nobody", "s3cret")
	require.Error(t, err)
	assert.Equal(t, ClassEligibility, ClassOf(err))
}

func TestAuthTokenFromOtherSecretRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")
	other := NewAuthService(db, "another-secret")

	token, err := other.Register("admin", "s3cret")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, ClassEligibility, ClassOf(err))
}
