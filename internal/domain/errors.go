package domain

import "errors"

var (
	// ErrParse is returned for unparseable time strings or unknown timezones
	ErrParse = errors.New("parse error")

	// ErrInvalidTimezone is wrapped together with ErrParse when a zone name is not recognized
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrInvalidInterval is returned for non-positive repeat or snooze minutes
	ErrInvalidInterval = errors.New("interval must be a positive number of minutes")

	// ErrNotFound is returned when a reminder does not exist or belongs to another user
	ErrNotFound = errors.New("reminder not found")

	// ErrPersistence wraps storage failures. The in-memory change that triggered
	// the save is kept and reconciled by the next successful save.
	ErrPersistence = errors.New("persistence error")

	// ErrDelivery wraps notifier failures
	ErrDelivery = errors.New("delivery error")
)
