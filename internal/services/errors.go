package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrReferenceNotFound  = errors.New("not found")
	ErrValidation         = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized - please login")
	ErrConflict           = errors.New("post was modified by another request, please retry")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var (
	ErrPostNotFound    = fmt.Errorf("post %w", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("comment %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrCountryNotFound = fmt.Errorf("country %w", ErrReferenceNotFound)

	ErrMissingUsername = fmt.Errorf("%w: username is required, please log in again to continue", ErrValidation)
	ErrMissingContent  = fmt.Errorf("%w: content is required", ErrValidation)
)
