package domain

import "errors"

var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when registering an email that already exists
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned when the email/password pair does not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEventNotFound is returned when an event is not found
	ErrEventNotFound = errors.New("event not found")

	// ErrNotEventOrganizer is returned when a user acts on an event they do not organize
	ErrNotEventOrganizer = errors.New("user is not the event organizer")

	// ErrTokenNotFound is returned when a token is not found
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenInactive is returned when buying or transferring a deactivated token
	ErrTokenInactive = errors.New("token is not active")

	// ErrInsufficientSupply is returned when a purchase exceeds the remaining supply
	ErrInsufficientSupply = errors.New("insufficient token supply")

	// ErrInvalidAddress is returned when a string is not a valid chain address
	ErrInvalidAddress = errors.New("invalid address")
)
