// file: controllers/organizer_controller_test.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon-hub/models"
)

func TestRequestOrganizer_FilesRequest(t *testing.T) {
	router, db := setupTestApp(t)
	cookie := signUpAndLogin(t, router, "hopeful")

	w := postForm(router, "/request_organizer/", url.Values{
		"entity": {"ACME"},
		"topic":  {"robotics"},
	}, cookie)

	assert.Equal(t, http.StatusFound, w.Code)

	var req models.OrganizerRequest
	require.NoError(t, db.First(&req).Error)
	assert.Equal(t, "ACME", req.Entity)
	assert.False(t, req.IsApproved)
}

func TestRequestOrganizer_SecondRequestRejected(t *testing.T) {
	router, _ := setupTestApp(t)
	cookie := signUpAndLogin(t, router, "eager")

	form := url.Values{"entity": {"ACME"}, "topic": {"robotics"}}
	w := postForm(router, "/request_organizer/", form, cookie)
	require.Equal(t, http.StatusFound, w.Code)

	w2 := postForm(router, "/request_organizer/", form, cookie)
	assert.Equal(t, http.StatusBadRequest, w2.Code)
}

func TestManageRequests_StaffOnly(t *testing.T) {
	router, _ := setupTestApp(t)
	cookie := signUpAndLogin(t, router, "regular")

	w := getPath(router, "/manage_requests/", cookie)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// A staff account can list and approve pending requests.
func TestApproveRequest_Flow(t *testing.T) {
	router, db := setupTestApp(t)

	// requesting user
	userCookie := signUpAndLogin(t, router, "hopeful")
	w := postForm(router, "/request_organizer/", url.Values{
		"entity": {"ACME"},
		"topic":  {"robotics"},
	}, userCookie)
	require.Equal(t, http.StatusFound, w.Code)

	// staff account; the flag must be set before login so the session
	// picks it up
	signUpAndLogin(t, router, "admin")
	require.NoError(t, db.Model(&models.User{}).
		Where("username = ?", "admin").Update("is_staff", true).Error)

	staffLogin := postForm(router, "/login_user/", url.Values{
		"username": {"admin"},
		"password": {"s3cret-pass"},
	}, nil)
	require.Equal(t, http.StatusFound, staffLogin.Code)

	var staffCookie *http.Cookie
	for _, c := range staffLogin.Result().Cookies() {
		if c.Name == "testsession" {
			staffCookie = c
		}
	}
	require.NotNil(t, staffCookie)

	listed := getPath(router, "/manage_requests/", staffCookie)
	assert.Equal(t, http.StatusOK, listed.Code)

	var req models.OrganizerRequest
	require.NoError(t, db.First(&req).Error)

	approved := postForm(router, "/approve_request/1/", url.Values{}, staffCookie)
	assert.Equal(t, http.StatusFound, approved.Code)

	require.NoError(t, db.First(&req).Error)
	assert.True(t, req.IsApproved)
}

func TestApproveRequest_UnknownID(t *testing.T) {
	router, db := setupTestApp(t)

	signUpAndLogin(t, router, "admin")
	require.NoError(t, db.Model(&models.User{}).
		Where("username = ?", "admin").Update("is_staff", true).Error)
	staffLogin := postForm(router, "/login_user/", url.Values{
		"username": {"admin"},
		"password": {"s3cret-pass"},
	}, nil)
	require.Equal(t, http.StatusFound, staffLogin.Code)

	var staffCookie *http.Cookie
	for _, c := range staffLogin.Result().Cookies() {
		if c.Name == "testsession" {
			staffCookie = c
		}
	}
	require.NotNil(t, staffCookie)

	w := postForm(router, "/approve_request/42/", url.Values{}, staffCookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
