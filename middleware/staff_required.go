// Package middleware file: middleware/staff_required.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"hackathon-hub/logger"
)

// StaffRequired restricts a route to staff accounts. The flag is set
// in the session at login; non-staff callers get a 403.
func StaffRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		isStaff, ok := session.Get("isStaff").(bool)

		if !ok || !isStaff {
			logger.Warn.Printf("StaffRequired: non-staff request to %s blocked", c.Request.URL.Path)
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}
