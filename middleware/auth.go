// Package middleware provides request filters and security checks for the application.
// File: middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"hackathon-hub/logger"
)

// -------------- authentication middleware --------------

// AuthRequired ensures the caller is logged in. It checks the "user"
// session key and redirects anonymous requests to the login page.
// Usage:
//
//	protected := router.Group("/", middleware.AuthRequired)
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	user := session.Get("user")

	// block request if user session is missing
	if user == nil {
		logger.Warn.Printf("AuthRequired: anonymous request to %s, redirecting to login", c.Request.URL.Path)
		c.Redirect(http.StatusFound, "/login_user/")
		c.Abort()
		return
	}

	c.Next()
}
