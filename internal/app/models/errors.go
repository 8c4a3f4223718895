package models

import "errors"

// Domain specific errors shared by handlers and services.
var (
	ErrNotFound           = errors.New("requested item not found")
	ErrConflict           = errors.New("item already exists or conflict")
	ErrUnauthenticated    = errors.New("authentication required or invalid credentials")
	ErrBadRequest         = errors.New("bad request")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMalformedSession   = errors.New("malformed session data")
	ErrSessionEnded       = errors.New("session was logged out")
)
