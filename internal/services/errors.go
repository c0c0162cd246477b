package services

import "errors"

// Define common service errors. Handlers map these to HTTP outcomes; the
// entity-specific NotFound variants exist because the API surface uses
// distinct messages for a missing job vs. a missing applicant.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicantNotFound   = errors.New("applicant not found")
	ErrManagerNotFound     = errors.New("hiring manager not found")
	ErrApplicationNotFound = errors.New("applicant not found for this job")
	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("conflict") // e.g. duplicate registration
	ErrValidation          = errors.New("validation failed")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRole         = errors.New("invalid role specified")
	ErrNotApproved         = errors.New("account not yet approved by an admin")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrResumeNotFound      = errors.New("resume not found")
)
