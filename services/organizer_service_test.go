// file: services/organizer_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hackathon-hub/database"
	"hackathon-hub/models"
	"hackathon-hub/services"
)

func setupOrganizerTest(t *testing.T) (*services.OrganizerService, *gorm.DB) {
	db, err := database.OpenTest()
	require.NoError(t, err)
	return services.NewOrganizerService(db), db
}

func TestAuthorizeCreate_NeverRequested(t *testing.T) {
	svc, db := setupOrganizerTest(t)
	user := createUser(t, db, "newbie")

	err := svc.AuthorizeCreate(user)
	assert.ErrorIs(t, err, services.ErrNeverRequested)
}

func TestAuthorizeCreate_PendingRequest(t *testing.T) {
	svc, db := setupOrganizerTest(t)
	user := createUser(t, db, "hopeful")

	_, err := svc.RequestOrganizer(user, "ACME", "robotics")
	require.NoError(t, err)

	err = svc.AuthorizeCreate(user)
	assert.ErrorIs(t, err, services.ErrNotApproved)
}

func TestAuthorizeCreate_Approved(t *testing.T) {
	svc, db := setupOrganizerTest(t)
	user := createUser(t, db, "organizer")

	req, err := svc.RequestOrganizer(user, "ACME", "robotics")
	require.NoError(t, err)
	require.NoError(t, svc.Approve(req.ID))

	assert.NoError(t, svc.AuthorizeCreate(user))
}

func TestRequestOrganizer_OnePerUser(t *testing.T) {
	svc, db := setupOrganizerTest(t)
	user := createUser(t, db, "eager")

	_, err := svc.RequestOrganizer(user, "ACME", "robotics")
	require.NoError(t, err)

	_, err = svc.RequestOrganizer(user, "ACME again", "more robotics")
	assert.ErrorIs(t, err, services.ErrAlreadyRequested)
}

// Role covers the three standings: no request, pending, approved.
func TestRole(t *testing.T) {
	svc, db := setupOrganizerTest(t)
	user := createUser(t, db, "somebody")

	role, err := svc.Role(user)
	require.NoError(t, err)
	assert.Equal(t, models.RoleParticipant, role)

	req, err := svc.RequestOrganizer(user, "ACME", "robotics")
	require.NoError(t, err)

	role, err = svc.Role(user)
	require.NoError(t, err)
	assert.Equal(t, models.RolePendingOrganizer, role)

	require.NoError(t, svc.Approve(req.ID))

	role, err = svc.Role(user)
	require.NoError(t, err)
	assert.Equal(t, models.RoleOrganizer, role)
}

func TestPendingRequests_ExcludesApproved(t *testing.T) {
	svc, db := setupOrganizerTest(t)
	first := createUser(t, db, "first")
	second := createUser(t, db, "second")

	req, err := svc.RequestOrganizer(first, "ACME", "robotics")
	require.NoError(t, err)
	_, err = svc.RequestOrganizer(second, "Globex", "fintech")
	require.NoError(t, err)

	require.NoError(t, svc.Approve(req.ID))

	pending, err := svc.PendingRequests()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "second", pending[0].User.Username)
}

func TestApprove_UnknownRequest(t *testing.T) {
	svc, _ := setupOrganizerTest(t)

	err := svc.Approve(9999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
