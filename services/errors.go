// Package services file: services/errors.go
package services

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the workflow services. Controllers map
// these onto HTTP responses; nothing here is retried.
var (
	// ErrAlreadyRegistered rejects a second registration for the same
	// user and hackathon, before any form processing.
	ErrAlreadyRegistered = errors.New("already registered for this hackathon")

	// ErrAlreadyRequested rejects a second organizer request from the
	// same user.
	ErrAlreadyRequested = errors.New("organizer request already on file")

	// ErrNeverRequested refuses hackathon creation when the user has
	// no organizer request at all.
	ErrNeverRequested = errors.New("must request to become an organizer first")

	// ErrNotApproved refuses hackathon creation while the organizer
	// request is still pending.
	ErrNotApproved = errors.New("not approved as an organizer yet")

	// ErrUsernameTaken rejects a signup for an existing username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords, deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotFound signals a missing hackathon, team or request.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidUsage marks a programming-contract violation, such as
	// invoking a workflow without its acting user. Never user-facing.
	ErrInvalidUsage = errors.New("workflow invoked without required context")
)

// ValidationError aggregates form-level and field-level messages from
// a failed validation pass. No writes happen when one is returned.
type ValidationError struct {
	FormErrors  []string
	FieldErrors map[string]string
}

func newValidationError() *ValidationError {
	return &ValidationError{FieldErrors: make(map[string]string)}
}

func (e *ValidationError) addForm(msg string) {
	e.FormErrors = append(e.FormErrors, msg)
}

func (e *ValidationError) addField(field, msg string) {
	e.FieldErrors[field] = msg
}

func (e *ValidationError) hasErrors() bool {
	return len(e.FormErrors) > 0 || len(e.FieldErrors) > 0
}

// Error implements the error interface by flattening all messages.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.FormErrors)+len(e.FieldErrors))
	msgs = append(msgs, e.FormErrors...)
	for field, msg := range e.FieldErrors {
		msgs = append(msgs, field+": "+msg)
	}
	return strings.Join(msgs, "; ")
}
