package user

import "errors"

// User domain errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailExists           = errors.New("email already registered")
	ErrInvalidRole           = errors.New("invalid role")
	ErrManagerAccessRequired = errors.New("manager access required")
	ErrAdminAccessRequired   = errors.New("administrator access required")
	ErrUnknownBulkAction     = errors.New("unknown bulk action")
)
