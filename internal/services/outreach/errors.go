package outreach

import (
	"errors"

	"charity/internal/repositories"
)

var (
	ErrEventNotFound      = repositories.ErrEventNotFound
	ErrVolunteerNotFound  = repositories.ErrVolunteerNotFound
	ErrContactNotFound    = repositories.ErrContactNotFound
	ErrSubscriberNotFound = repositories.ErrSubscriberNotFound

	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidSchedule = errors.New("event cannot end before it starts")
	ErrEmptyUpdate     = errors.New("no updatable fields provided")
)
