package repositories

import "errors"

var (
	ErrDonationNotFound   = errors.New("donation not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrVolunteerNotFound  = errors.New("volunteer not found")
	ErrContactNotFound    = errors.New("contact not found")
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already taken")
	ErrSlugTaken          = errors.New("slug already taken")
)
