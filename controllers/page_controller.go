// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hackathon-hub/logger"
	"hackathon-hub/models"
	"hackathon-hub/services"
)

// PageController serves the static-ish pages: welcome, home listing,
// profile, settings and the health check.
type PageController struct {
	auth       services.AuthServiceInterface
	hackathons services.HackathonServiceInterface
	organizers services.OrganizerServiceInterface
}

// NewPageController creates a PageController.
func NewPageController(auth services.AuthServiceInterface, hackathons services.HackathonServiceInterface, organizers services.OrganizerServiceInterface) *PageController {
	return &PageController{auth: auth, hackathons: hackathons, organizers: organizers}
}

// Health reports liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Welcome renders the landing page.
func (pc *PageController) Welcome(c *gin.Context) {
	c.HTML(http.StatusOK, "welcome.html", gin.H{})
}

// Home lists every hackathon together with the caller's role, which
// the template uses to show or hide the create button.
func (pc *PageController) Home(c *gin.Context) {
	user, ok := currentUser(c, pc.auth)
	if !ok {
		c.Redirect(http.StatusFound, "/login_user/")
		return
	}

	role, err := pc.organizers.Role(user)
	if err != nil {
		logger.Error.Printf("Home: computing role for %s failed: %v", user.Username, err)
		role = models.RoleParticipant
	}

	hackathons, err := pc.hackathons.List()
	if err != nil {
		logger.Error.Printf("Home: listing hackathons failed: %v", err)
		c.HTML(http.StatusInternalServerError, "home.html", gin.H{
			"Error":      "Could not load hackathons.",
			"User":       user,
			"UserRole":   role,
			"Hackathons": []models.Hackathon{},
		})
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Hackathons": hackathons,
		"User":       user,
		"UserRole":   role,
	})
}

// Profile renders the caller's profile page.
func (pc *PageController) Profile(c *gin.Context) {
	user, _ := currentUser(c, pc.auth)
	c.HTML(http.StatusOK, "profile.html", gin.H{"User": user})
}

// Settings renders the settings page.
func (pc *PageController) Settings(c *gin.Context) {
	user, _ := currentUser(c, pc.auth)
	c.HTML(http.StatusOK, "settings.html", gin.H{"User": user})
}
