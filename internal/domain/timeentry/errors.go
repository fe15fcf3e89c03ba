package timeentry

import "errors"

// Time entry domain errors
var (
	ErrAlreadyClockedIn   = errors.New("an open time entry already exists")
	ErrNotClockedIn       = errors.New("no open time entry to clock out of")
	ErrLunchAlreadyOpen   = errors.New("lunch has already been started")
	ErrLunchNotStarted    = errors.New("lunch has not been started")
	ErrEntryNotFound      = errors.New("time entry not found")
	ErrEntryNotEditable   = errors.New("time entry has already been approved or rejected")
	ErrClockOutBeforeIn   = errors.New("clock out must not be before clock in")
	ErrUnauthorizedAccess = errors.New("unauthorized to access this time entry")
)
