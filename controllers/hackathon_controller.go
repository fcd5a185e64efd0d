// Package controllers file: controllers/hackathon_controller.go
package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hackathon-hub/logger"
	"hackathon-hub/models"
	"hackathon-hub/services"
)

// HackathonController serves hackathon creation, details, the
// registration workflow and the share QR code.
type HackathonController struct {
	auth           services.AuthServiceInterface
	hackathons     services.HackathonServiceInterface
	registrations  services.RegistrationServiceInterface
	organizers     services.OrganizerServiceInterface
	applicationURL string
}

// NewHackathonController creates a HackathonController. applicationURL
// is the externally reachable base URL, used in QR codes.
func NewHackathonController(auth services.AuthServiceInterface, hackathons services.HackathonServiceInterface,
	registrations services.RegistrationServiceInterface, organizers services.OrganizerServiceInterface,
	applicationURL string) *HackathonController {
	return &HackathonController{
		auth:           auth,
		hackathons:     hackathons,
		registrations:  registrations,
		organizers:     organizers,
		applicationURL: applicationURL,
	}
}

// loadHackathon resolves the :id path parameter, rendering the
// not-found page on a miss.
func (hc *HackathonController) loadHackathon(c *gin.Context) (*models.Hackathon, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid hackathon id")
		return nil, false
	}

	hackathon, err := hc.hackathons.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.String(http.StatusNotFound, "hackathon not found")
			return nil, false
		}
		logger.Error.Printf("loadHackathon: loading %d failed: %v", id, err)
		c.String(http.StatusInternalServerError, "internal error")
		return nil, false
	}
	return hackathon, true
}

// ------------------ creation ------------------

// ShowCreateForm renders the hackathon form, or the permission error
// when the caller is not an approved organizer. The gate runs on GET
// too so unapproved users never see the form.
func (hc *HackathonController) ShowCreateForm(c *gin.Context) {
	user, ok := currentUser(c, hc.auth)
	if !ok {
		c.Redirect(http.StatusFound, "/login_user/")
		return
	}

	if err := hc.organizers.AuthorizeCreate(user); err != nil {
		switch {
		case errors.Is(err, services.ErrNeverRequested):
			c.HTML(http.StatusForbidden, "forbidden.html", gin.H{
				"Error": "You must request to become an organizer first.",
			})
		case errors.Is(err, services.ErrNotApproved):
			c.HTML(http.StatusForbidden, "forbidden.html", gin.H{
				"Error": "You are not approved as an organizer yet.",
			})
		default:
			logger.Error.Printf("ShowCreateForm: gate check failed for %s: %v", user.Username, err)
			c.String(http.StatusInternalServerError, "internal error")
		}
		return
	}

	c.HTML(http.StatusOK, "create_hackaton.html", gin.H{})
}

// PerformCreate creates a hackathon for an approved organizer. The
// rules file and cover photo are optional multipart uploads handed to
// the blob store.
func (hc *HackathonController) PerformCreate(c *gin.Context) {
	user, ok := currentUser(c, hc.auth)
	if !ok {
		c.Redirect(http.StatusFound, "/login_user/")
		return
	}

	var form services.HackathonForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn.Printf("PerformCreate: bad form from %s: %v", user.Username, err)
		c.HTML(http.StatusBadRequest, "create_hackaton.html", gin.H{
			"Error": "Please check the dates and try again.",
		})
		return
	}

	rulesFile, closeRules := openUpload(c, "rules_file")
	defer closeRules()
	coverPhoto, closeCover := openUpload(c, "cover_photo")
	defer closeCover()

	_, err := hc.hackathons.Create(user, form, rulesFile, coverPhoto)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrNeverRequested):
			c.HTML(http.StatusForbidden, "forbidden.html", gin.H{
				"Error": "You must request to become an organizer first.",
			})
		case errors.Is(err, services.ErrNotApproved):
			c.HTML(http.StatusForbidden, "forbidden.html", gin.H{
				"Error": "You are not approved as an organizer yet.",
			})
		case errors.As(err, &verr):
			c.HTML(http.StatusBadRequest, "create_hackaton.html", gin.H{
				"FormErrors":  verr.FormErrors,
				"FieldErrors": verr.FieldErrors,
				"Form":        form,
			})
		default:
			logger.Error.Printf("PerformCreate: failed for %s: %v", user.Username, err)
			c.HTML(http.StatusInternalServerError, "create_hackaton.html", gin.H{
				"Error": "Internal error, please try again later.",
			})
		}
		return
	}

	c.Redirect(http.StatusFound, "/home/")
}

// openUpload converts an optional multipart file field into an upload
// input. The returned closer is a no-op when the field is absent.
func openUpload(c *gin.Context, field string) (*services.UploadInput, func()) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, func() {}
	}

	file, err := header.Open()
	if err != nil {
		logger.Warn.Printf("openUpload: could not open %s: %v", field, err)
		return nil, func() {}
	}

	return &services.UploadInput{
		Filename:    header.Filename,
		ContentType: uploadContentType(header),
		Reader:      file,
	}, func() { _ = file.Close() }
}

func uploadContentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// ------------------ details ------------------

// Details shows one hackathon and whether the caller is registered.
func (hc *HackathonController) Details(c *gin.Context) {
	user, ok := currentUser(c, hc.auth)
	if !ok {
		c.Redirect(http.StatusFound, "/login_user/")
		return
	}

	hackathon, ok := hc.loadHackathon(c)
	if !ok {
		return
	}

	registered, err := hc.registrations.IsRegistered(user.ID, hackathon.ID)
	if err != nil {
		logger.Error.Printf("Details: registration check failed for %s: %v", user.Username, err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.HTML(http.StatusOK, "hackathon_details.html", gin.H{
		"Hackathon":    hackathon,
		"IsRegistered": registered,
	})
}

// ------------------ registration ------------------

// ShowRegisterForm renders the create-or-join form with the team
// selector restricted to this hackathon's teams.
func (hc *HackathonController) ShowRegisterForm(c *gin.Context) {
	user, ok := currentUser(c, hc.auth)
	if !ok {
		c.Redirect(http.StatusFound, "/login_user/")
		return
	}

	hackathon, ok := hc.loadHackathon(c)
	if !ok {
		return
	}

	registered, err := hc.registrations.IsRegistered(user.ID, hackathon.ID)
	if err != nil {
		logger.Error.Printf("ShowRegisterForm: registration check failed: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	if registered {
		c.HTML(http.StatusForbidden, "forbidden.html", gin.H{
			"Error": "You are already registered for this hackathon.",
		})
		return
	}

	teams, err := hc.registrations.TeamsFor(hackathon.ID)
	if err != nil {
		logger.Error.Printf("ShowRegisterForm: listing teams failed: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.HTML(http.StatusOK, "register_for_hackathon.html", gin.H{
		"Hackathon": hackathon,
		"Teams":     teams,
		"Form":      services.RegistrationForm{},
	})
}

// PerformRegister runs the registration workflow: duplicate guard,
// create-or-join validation, then the transactional commit.
func (hc *HackathonController) PerformRegister(c *gin.Context) {
	user, ok := currentUser(c, hc.auth)
	if !ok {
		c.Redirect(http.StatusFound, "/login_user/")
		return
	}

	hackathon, ok := hc.loadHackathon(c)
	if !ok {
		return
	}

	var form services.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn.Printf("PerformRegister: bad form from %s: %v", user.Username, err)
		c.HTML(http.StatusBadRequest, "register_for_hackathon.html", gin.H{
			"Hackathon": hackathon,
			"Form":      form,
			"Error":     "Please check the form and try again.",
		})
		return
	}

	_, err := hc.registrations.Register(user, hackathon, form)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrAlreadyRegistered):
			c.HTML(http.StatusForbidden, "forbidden.html", gin.H{
				"Error": "You are already registered for this hackathon.",
			})
		case errors.As(err, &verr):
			teams, terr := hc.registrations.TeamsFor(hackathon.ID)
			if terr != nil {
				logger.Error.Printf("PerformRegister: listing teams failed: %v", terr)
			}
			c.HTML(http.StatusBadRequest, "register_for_hackathon.html", gin.H{
				"Hackathon":   hackathon,
				"Teams":       teams,
				"Form":        form,
				"FormErrors":  verr.FormErrors,
				"FieldErrors": verr.FieldErrors,
			})
		default:
			logger.Error.Printf("PerformRegister: failed for %s at %q: %v", user.Username, hackathon.Title, err)
			c.HTML(http.StatusInternalServerError, "register_for_hackathon.html", gin.H{
				"Hackathon": hackathon,
				"Form":      form,
				"Error":     "Internal error, please try again later.",
			})
		}
		return
	}

	c.Redirect(http.StatusFound, "/home/")
}

// ------------------ share QR ------------------

// QRCode serves a PNG QR code linking to this hackathon's
// registration page.
func (hc *HackathonController) QRCode(c *gin.Context) {
	hackathon, ok := hc.loadHackathon(c)
	if !ok {
		return
	}

	png, err := services.GenerateHackathonQR(hc.applicationURL, hackathon.ID, 256)
	if err != nil {
		logger.Error.Printf("QRCode: generation failed for %d: %v", hackathon.ID, err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
