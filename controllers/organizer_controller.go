// Package controllers file: controllers/organizer_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hackathon-hub/logger"
	"hackathon-hub/models"
	"hackathon-hub/services"
)

// OrganizerController serves the organizer request form and the staff
// approval screens.
type OrganizerController struct {
	auth       services.AuthServiceInterface
	organizers services.OrganizerServiceInterface
}

// NewOrganizerController creates an OrganizerController.
func NewOrganizerController(auth services.AuthServiceInterface, organizers services.OrganizerServiceInterface) *OrganizerController {
	return &OrganizerController{auth: auth, organizers: organizers}
}

// ShowRequestForm renders the request-to-be-organizer form.
func (oc *OrganizerController) ShowRequestForm(c *gin.Context) {
	c.HTML(http.StatusOK, "request_organizer.html", gin.H{})
}

// PerformRequest files the caller's organizer request.
func (oc *OrganizerController) PerformRequest(c *gin.Context) {
	user, ok := currentUser(c, oc.auth)
	if !ok {
		c.Redirect(http.StatusFound, "/login_user/")
		return
	}

	entity := c.PostForm("entity")
	topic := c.PostForm("topic")
	if entity == "" || topic == "" {
		c.HTML(http.StatusBadRequest, "request_organizer.html", gin.H{
			"Error": "Please describe your entity and topic.",
		})
		return
	}

	if _, err := oc.organizers.RequestOrganizer(user, entity, topic); err != nil {
		if errors.Is(err, services.ErrAlreadyRequested) {
			c.HTML(http.StatusBadRequest, "request_organizer.html", gin.H{
				"Error": "You have already submitted an organizer request.",
			})
			return
		}
		logger.Error.Printf("PerformRequest: failed for %s: %v", user.Username, err)
		c.HTML(http.StatusInternalServerError, "request_organizer.html", gin.H{
			"Error": "Internal error, please try again later.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/home/")
}

// ------------------ staff screens ------------------

// ManageRequests lists the pending organizer requests for staff.
func (oc *OrganizerController) ManageRequests(c *gin.Context) {
	pending, err := oc.organizers.PendingRequests()
	if err != nil {
		logger.Error.Printf("ManageRequests: listing failed: %v", err)
		c.HTML(http.StatusInternalServerError, "manage_requests.html", gin.H{
			"Error":           "Could not load pending requests.",
			"PendingRequests": []models.OrganizerRequest{},
		})
		return
	}

	c.HTML(http.StatusOK, "manage_requests.html", gin.H{
		"PendingRequests": pending,
	})
}

// ApproveRequest flips the approval flag on one request and returns to
// the list.
func (oc *OrganizerController) ApproveRequest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid request id")
		return
	}

	if err := oc.organizers.Approve(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.String(http.StatusNotFound, "organizer request not found")
			return
		}
		logger.Error.Printf("ApproveRequest: approving %d failed: %v", id, err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Redirect(http.StatusFound, "/manage_requests/")
}
