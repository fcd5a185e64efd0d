// Package models defines the persisted entities of the application.
// File: models/models.go
package models

import "time"

// ----------------------- user model -----------------------

// User is an account in the identity store. Referenced, never owned,
// by the other entities.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:255" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsStaff      bool      `gorm:"default:false" json:"is_staff"`
	CreatedAt    time.Time `json:"created_at"`
}

// ----------------------- organizer request -----------------------

// OrganizerRequest records a user's application to become an organizer.
// One per user; approval is a single staff-controlled flag.
type OrganizerRequest struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID" json:"user"`
	Entity     string    `gorm:"type:text" json:"entity"`
	Topic      string    `gorm:"type:text" json:"topic"`
	IsApproved bool      `gorm:"default:false" json:"is_approved"`
	CreatedAt  time.Time `json:"date_requested"`
}

// ----------------------- hackathon model -----------------------

// Hackathon is an event created by an approved organizer. Deleting a
// hackathon cascades to its teams and registrations. The two file
// fields hold blob-store keys, not file contents.
type Hackathon struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Title         string    `gorm:"size:100;not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	StartDate     time.Time `gorm:"not null" json:"start_date"`
	EndDate       time.Time `gorm:"not null" json:"end_date"`
	Location      string    `gorm:"size:200" json:"location"`
	OrganizerID   uint      `gorm:"not null" json:"organizer_id"`
	Organizer     User      `gorm:"foreignKey:OrganizerID" json:"organizer"`
	RulesFileKey  string    `gorm:"size:512" json:"rules_file_key"`
	CoverPhotoKey string    `gorm:"size:512" json:"cover_photo_key"`
	Schedule      string    `gorm:"type:text" json:"schedule"`
	Teams         []Team    `gorm:"foreignKey:HackathonID;constraint:OnDelete:CASCADE" json:"teams"`
	Participants  []User    `gorm:"many2many:hackathon_participants;" json:"participants"`
	CreatedAt     time.Time `json:"created_at"`
}

// ----------------------- team model -----------------------

// Team groups participants within a single hackathon. Names are not
// required to be unique, even inside one hackathon.
type Team struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	HackathonID uint      `gorm:"not null;index" json:"hackathon_id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Members     []User    `gorm:"many2many:team_members;" json:"members"`
	CreatedAt   time.Time `json:"created_at"`
}

// ----------------------- registration model -----------------------

// Registration binds a user to a hackathon and optionally a team.
// The composite unique index is the storage-level guard behind the
// duplicate-registration pre-check: a racing second insert fails here.
// If the team is deleted the reference is cleared, the row survives.
type Registration struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_registrations_user_hackathon" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"user"`
	HackathonID uint      `gorm:"not null;uniqueIndex:idx_registrations_user_hackathon" json:"hackathon_id"`
	Hackathon   Hackathon `gorm:"foreignKey:HackathonID" json:"hackathon"`
	TeamID      *uint     `json:"team_id"`
	Team        *Team     `gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL" json:"team"`
	TeamName    string    `gorm:"size:100" json:"team_name"`
	CreatedAt   time.Time `json:"created_at"`
}
