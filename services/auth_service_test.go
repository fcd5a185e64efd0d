// file: services/auth_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon-hub/database"
	"hackathon-hub/services"
)

func setupAuthTest(t *testing.T) *services.AuthService {
	db, err := database.OpenTest()
	require.NoError(t, err)
	return services.NewAuthService(db)
}

func TestSignUpAndAuthenticate(t *testing.T) {
	svc := setupAuthTest(t)

	user, err := svc.SignUp("alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash, "password must be stored hashed")

	authed, err := svc.Authenticate("alice", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc := setupAuthTest(t)

	_, err := svc.SignUp("alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = svc.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	svc := setupAuthTest(t)

	_, err := svc.Authenticate("nobody", "whatever")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	svc := setupAuthTest(t)

	_, err := svc.SignUp("alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = svc.SignUp("alice", "other@example.com", "different")
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
}
