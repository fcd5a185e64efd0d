// Package services file: services/registration_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hackathon-hub/logger"
	"hackathon-hub/models"
)

// RegistrationForm is the submitted payload for registering at a
// hackathon: either a new team name (with up to three extra members)
// or an existing team id, never both.
type RegistrationForm struct {
	TeamName string `form:"team_name"`
	TeamID   uint   `form:"team"`
	Member1  string `form:"member_1"`
	Member2  string `form:"member_2"`
	Member3  string `form:"member_3"`
}

// memberFields returns the optional member inputs keyed by field name,
// in submission order.
func (f *RegistrationForm) memberFields() []struct{ Field, Username string } {
	return []struct{ Field, Username string }{
		{"member_1", f.Member1},
		{"member_2", f.Member2},
		{"member_3", f.Member3},
	}
}

// RegistrationServiceInterface is what the controllers depend on.
type RegistrationServiceInterface interface {
	IsRegistered(userID, hackathonID uint) (bool, error)
	TeamsFor(hackathonID uint) ([]models.Team, error)
	Validate(hackathon *models.Hackathon, form RegistrationForm) *ValidationError
	Register(user *models.User, hackathon *models.Hackathon, form RegistrationForm) (*models.Registration, error)
}

// RegistrationService runs the create-or-join registration workflow.
type RegistrationService struct {
	db      *gorm.DB
	metrics MetricsPublisher
}

// NewRegistrationService creates a RegistrationService. A nil metrics
// publisher disables metric emission.
func NewRegistrationService(db *gorm.DB, metrics MetricsPublisher) *RegistrationService {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &RegistrationService{db: db, metrics: metrics}
}

// IsRegistered reports whether a registration row exists for the
// (user, hackathon) pair.
func (s *RegistrationService) IsRegistered(userID, hackathonID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Registration{}).
		Where("user_id = ? AND hackathon_id = ?", userID, hackathonID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking registration: %w", err)
	}
	return count > 0, nil
}

// TeamsFor lists the joinable teams of one hackathon. The register
// form's team selector is restricted to this set.
func (s *RegistrationService) TeamsFor(hackathonID uint) ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.Where("hackathon_id = ?", hackathonID).Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	return teams, nil
}

// Validate checks the form against the workflow contract:
// exactly one of team_name / team must be set, every named extra
// member must be an existing user, and the chosen team must belong to
// the hackathon. Field errors accumulate; the member fields are
// checked independently of each other.
func (s *RegistrationService) Validate(hackathon *models.Hackathon, form RegistrationForm) *ValidationError {
	verr := newValidationError()

	creating := form.TeamName != ""
	joining := form.TeamID != 0

	if creating && joining {
		verr.addForm("You cannot create a team and join an existing team at the same time.")
		return verr
	}
	if !creating && !joining {
		verr.addForm("You must either create a team or join an existing team.")
		return verr
	}

	if creating {
		for _, m := range form.memberFields() {
			if m.Username == "" {
				continue
			}
			var count int64
			if err := s.db.Model(&models.User{}).Where("username = ?", m.Username).Count(&count).Error; err != nil {
				logger.Error.Printf("Validate: member lookup failed for %q: %v", m.Username, err)
				verr.addField(m.Field, "Could not verify this user, please try again.")
				continue
			}
			if count == 0 {
				verr.addField(m.Field, fmt.Sprintf("User '%s' does not exist.", m.Username))
			}
		}
	}

	if joining {
		var count int64
		if err := s.db.Model(&models.Team{}).
			Where("id = ? AND hackathon_id = ?", form.TeamID, hackathon.ID).
			Count(&count).Error; err != nil || count == 0 {
			verr.addField("team", "Select a valid team for this hackathon.")
		}
	}

	if verr.hasErrors() {
		return verr
	}
	return nil
}

// Register runs the full workflow: duplicate guard, validation, then a
// single transaction that creates or resolves the team, inserts the
// registration row and adds the user to the hackathon's participants.
//
// Unresolvable member usernames at commit time are skipped with a
// warning rather than failing the whole operation; validation has
// already reported them, so this only happens when a named user was
// deleted between validation and commit.
func (s *RegistrationService) Register(user *models.User, hackathon *models.Hackathon, form RegistrationForm) (*models.Registration, error) {
	if user == nil || hackathon == nil {
		return nil, fmt.Errorf("%w: Register needs both user and hackathon", ErrInvalidUsage)
	}

	registered, err := s.IsRegistered(user.ID, hackathon.ID)
	if err != nil {
		return nil, err
	}
	if registered {
		logger.Warn.Printf("Register: user %s already registered for hackathon %d", user.Username, hackathon.ID)
		return nil, ErrAlreadyRegistered
	}

	if verr := s.Validate(hackathon, form); verr != nil {
		return nil, verr
	}

	var registration *models.Registration
	teamCreated := false

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var team models.Team

		if form.TeamName != "" {
			team = models.Team{HackathonID: hackathon.ID, Name: form.TeamName}
			if err := tx.Create(&team).Error; err != nil {
				return fmt.Errorf("creating team: %w", err)
			}
			teamCreated = true

			members := []*models.User{user}
			for _, m := range form.memberFields() {
				if m.Username == "" {
					continue
				}
				var member models.User
				if err := tx.Where("username = ?", m.Username).First(&member).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						logger.Warn.Printf("Register: skipping vanished member %q for team %q", m.Username, team.Name)
						continue
					}
					return fmt.Errorf("resolving member %q: %w", m.Username, err)
				}
				members = append(members, &member)
			}
			if err := tx.Model(&team).Association("Members").Append(members); err != nil {
				return fmt.Errorf("adding team members: %w", err)
			}
		} else {
			if err := tx.Where("id = ? AND hackathon_id = ?", form.TeamID, hackathon.ID).
				First(&team).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return fmt.Errorf("resolving team: %w", err)
			}
			// join path: the team's membership is left untouched
		}

		teamID := team.ID
		reg := models.Registration{
			UserID:      user.ID,
			HackathonID: hackathon.ID,
			TeamID:      &teamID,
			TeamName:    form.TeamName,
		}
		if err := tx.Create(&reg).Error; err != nil {
			// the composite unique index closes the check-then-act race
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyRegistered
			}
			return fmt.Errorf("creating registration: %w", err)
		}

		if err := tx.Model(hackathon).Association("Participants").Append(user); err != nil {
			return fmt.Errorf("adding participant: %w", err)
		}

		registration = &reg
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info.Printf("Register: user %s registered for hackathon %q (team %d, created=%t)",
		user.Username, hackathon.Title, *registration.TeamID, teamCreated)

	s.metrics.RegistrationCompleted(hackathon.Title)
	if teamCreated {
		s.metrics.TeamCreated(hackathon.Title)
	}
	return registration, nil
}
