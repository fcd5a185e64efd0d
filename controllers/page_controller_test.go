// file: controllers/page_controller_test.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelcome_Public(t *testing.T) {
	router, _ := setupTestApp(t)

	w := getPath(router, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHome_RedirectsAnonymous(t *testing.T) {
	router, _ := setupTestApp(t)

	w := getPath(router, "/home/", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login_user/", w.Header().Get("Location"))
}

func TestHome_RendersForLoggedInUser(t *testing.T) {
	router, db := setupTestApp(t)
	seedHackathon(t, db)
	cookie := signUpAndLogin(t, router, "alice")

	w := getPath(router, "/home/", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}
