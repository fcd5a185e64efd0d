// Package services file: services/organizer_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hackathon-hub/logger"
	"hackathon-hub/models"
)

// OrganizerServiceInterface gates hackathon creation and backs the
// staff approval screens.
type OrganizerServiceInterface interface {
	RequestOrganizer(user *models.User, entity, topic string) (*models.OrganizerRequest, error)
	AuthorizeCreate(user *models.User) error
	Role(user *models.User) (models.Role, error)
	PendingRequests() ([]models.OrganizerRequest, error)
	Approve(requestID uint) error
}

// OrganizerService manages organizer requests and their approval flag.
type OrganizerService struct {
	db *gorm.DB
}

// NewOrganizerService creates an OrganizerService.
func NewOrganizerService(db *gorm.DB) *OrganizerService {
	return &OrganizerService{db: db}
}

// RequestOrganizer files the user's one organizer request. The unique
// index on user_id backs the one-per-user rule.
func (s *OrganizerService) RequestOrganizer(user *models.User, entity, topic string) (*models.OrganizerRequest, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: RequestOrganizer needs a user", ErrInvalidUsage)
	}

	req := models.OrganizerRequest{
		UserID: user.ID,
		Entity: entity,
		Topic:  topic,
	}
	if err := s.db.Create(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRequested
		}
		return nil, fmt.Errorf("creating organizer request: %w", err)
	}

	logger.Info.Printf("RequestOrganizer: request filed by %s (entity=%q)", user.Username, entity)
	return &req, nil
}

// AuthorizeCreate decides whether the user may create hackathons,
// distinguishing "never requested" from "requested but not approved".
func (s *OrganizerService) AuthorizeCreate(user *models.User) error {
	if user == nil {
		return fmt.Errorf("%w: AuthorizeCreate needs a user", ErrInvalidUsage)
	}

	var req models.OrganizerRequest
	if err := s.db.Where("user_id = ?", user.ID).First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNeverRequested
		}
		return fmt.Errorf("loading organizer request: %w", err)
	}
	if !req.IsApproved {
		return ErrNotApproved
	}
	return nil
}

// Role computes the caller's role once so handlers can thread it
// through instead of re-deriving it from existence checks.
func (s *OrganizerService) Role(user *models.User) (models.Role, error) {
	if user == nil {
		return "", fmt.Errorf("%w: Role needs a user", ErrInvalidUsage)
	}

	var req models.OrganizerRequest
	if err := s.db.Where("user_id = ?", user.ID).First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RoleParticipant, nil
		}
		return "", fmt.Errorf("loading organizer request: %w", err)
	}
	if req.IsApproved {
		return models.RoleOrganizer, nil
	}
	return models.RolePendingOrganizer, nil
}

// PendingRequests lists unapproved requests for the staff screen,
// oldest first, with the requesting user preloaded.
func (s *OrganizerService) PendingRequests() ([]models.OrganizerRequest, error) {
	var requests []models.OrganizerRequest
	err := s.db.Preload("User").
		Where("is_approved = ?", false).
		Order("created_at").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("listing pending requests: %w", err)
	}
	return requests, nil
}

// Approve flips the approval flag on one request. Approval email is
// deliberately not sent.
func (s *OrganizerService) Approve(requestID uint) error {
	result := s.db.Model(&models.OrganizerRequest{}).
		Where("id = ?", requestID).
		Update("is_approved", true)
	if result.Error != nil {
		return fmt.Errorf("approving request %d: %w", requestID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	logger.Info.Printf("Approve: organizer request %d approved", requestID)
	return nil
}
