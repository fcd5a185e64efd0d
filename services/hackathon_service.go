// Package services file: services/hackathon_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hackathon-hub/logger"
	"hackathon-hub/models"
)

// HackathonForm is the submitted payload for creating a hackathon.
// The two files arrive separately as upload inputs.
type HackathonForm struct {
	Title       string    `form:"title"`
	Description string    `form:"description"`
	StartDate   time.Time `form:"start_date" time_format:"2006-01-02T15:04"`
	EndDate     time.Time `form:"end_date" time_format:"2006-01-02T15:04"`
	Location    string    `form:"location"`
	Schedule    string    `form:"schedule"`
}

// HackathonServiceInterface is the hackathon CRUD surface.
type HackathonServiceInterface interface {
	Create(organizer *models.User, form HackathonForm, rulesFile, coverPhoto *UploadInput) (*models.Hackathon, error)
	List() ([]models.Hackathon, error)
	Get(id uint) (*models.Hackathon, error)
}

// HackathonService persists hackathons and hands their file fields to
// the blob store.
type HackathonService struct {
	db        *gorm.DB
	organizer OrganizerServiceInterface
	uploader  Uploader
}

// NewHackathonService creates a HackathonService. The organizer
// service gates creation; the uploader stores the optional files.
func NewHackathonService(db *gorm.DB, organizer OrganizerServiceInterface, uploader Uploader) *HackathonService {
	return &HackathonService{db: db, organizer: organizer, uploader: uploader}
}

// Validate checks the creation form. Title, description, location and
// a coherent time window are required.
func (s *HackathonService) Validate(form HackathonForm) *ValidationError {
	verr := newValidationError()

	if form.Title == "" {
		verr.addField("title", "Title is required.")
	}
	if form.Description == "" {
		verr.addField("description", "Description is required.")
	}
	if form.Location == "" {
		verr.addField("location", "Location is required.")
	}
	if form.StartDate.IsZero() {
		verr.addField("start_date", "Start date is required.")
	}
	if form.EndDate.IsZero() {
		verr.addField("end_date", "End date is required.")
	} else if !form.StartDate.IsZero() && form.EndDate.Before(form.StartDate) {
		verr.addField("end_date", "End date must be after the start date.")
	}

	if verr.hasErrors() {
		return verr
	}
	return nil
}

// Create persists a new hackathon for an approved organizer. The
// organizer gate runs first, so a refused caller never triggers an
// upload.
func (s *HackathonService) Create(organizer *models.User, form HackathonForm, rulesFile, coverPhoto *UploadInput) (*models.Hackathon, error) {
	if organizer == nil {
		return nil, fmt.Errorf("%w: Create needs an organizer", ErrInvalidUsage)
	}
	if err := s.organizer.AuthorizeCreate(organizer); err != nil {
		return nil, err
	}
	if verr := s.Validate(form); verr != nil {
		return nil, verr
	}

	hackathon := models.Hackathon{
		Title:       form.Title,
		Description: form.Description,
		StartDate:   form.StartDate,
		EndDate:     form.EndDate,
		Location:    form.Location,
		Schedule:    form.Schedule,
		OrganizerID: organizer.ID,
	}

	if rulesFile != nil {
		key, err := s.uploader.Upload("hackathon_rules", *rulesFile)
		if err != nil {
			return nil, err
		}
		hackathon.RulesFileKey = key
	}
	if coverPhoto != nil {
		key, err := s.uploader.Upload("hackathon_covers", *coverPhoto)
		if err != nil {
			return nil, err
		}
		hackathon.CoverPhotoKey = key
	}

	if err := s.db.Create(&hackathon).Error; err != nil {
		return nil, fmt.Errorf("creating hackathon: %w", err)
	}

	logger.Info.Printf("Create: hackathon %q created by %s", hackathon.Title, organizer.Username)
	return &hackathon, nil
}

// List returns every hackathon, newest first.
func (s *HackathonService) List() ([]models.Hackathon, error) {
	var hackathons []models.Hackathon
	if err := s.db.Order("start_date desc").Find(&hackathons).Error; err != nil {
		return nil, fmt.Errorf("listing hackathons: %w", err)
	}
	return hackathons, nil
}

// Get loads one hackathon with its organizer and teams.
func (s *HackathonService) Get(id uint) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	err := s.db.Preload("Organizer").Preload("Teams").First(&hackathon, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading hackathon %d: %w", id, err)
	}
	return &hackathon, nil
}
