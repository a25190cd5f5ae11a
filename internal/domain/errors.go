package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidRecordKind  = errors.New("invalid stock record kind")
	ErrInvalidDate        = errors.New("date must be in YYYY-MM-DD format")
)
