package service

import "errors"

var (
	ErrMissingTitle       = errors.New("publication title is required")
	ErrMissingDescription = errors.New("publication description is required")
	ErrMissingCategory    = errors.New("publication category is required")
	ErrMissingDelay       = errors.New("delay is required")
	ErrNegativeBudget     = errors.New("budget must be zero or positive")
	ErrTooManyAttachments = errors.New("at most five attachments are allowed")
	ErrUnknownStatus      = errors.New("unknown publication status")

	ErrMissingMessage     = errors.New("proposition message is required")
	ErrPublicationNotOpen = errors.New("publication is no longer open to propositions")
	ErrNotFreelance       = errors.New("only freelance accounts can submit propositions")
	ErrNotAuthenticated   = errors.New("no active session")
)
