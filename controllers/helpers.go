// Package controllers file: controllers/helpers.go
package controllers

import (
	"errors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"hackathon-hub/logger"
	"hackathon-hub/models"
	"hackathon-hub/services"
)

// currentUser resolves the logged-in account from the session. The
// auth middleware guarantees the "user" key exists on protected
// routes; a miss here means the account was deleted underneath an
// open session.
func currentUser(c *gin.Context, auth services.AuthServiceInterface) (*models.User, bool) {
	session := sessions.Default(c)
	username, ok := session.Get("user").(string)
	if !ok || username == "" {
		return nil, false
	}

	user, err := auth.UserByUsername(username)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			logger.Error.Printf("currentUser: lookup failed for %s: %v", username, err)
		}
		return nil, false
	}
	return user, true
}

// loginSession stores the authenticated account in the session.
func loginSession(c *gin.Context, user *models.User) error {
	session := sessions.Default(c)
	session.Set("user", user.Username)
	session.Set("isStaff", user.IsStaff)
	return session.Save()
}
