package repositories

import "errors"

//go:generate mockgen -destination=./mock/post_repository.go -package=mock -source=post_repository.go
//go:generate mockgen -destination=./mock/country_repository.go -package=mock -source=country_repository.go
//go:generate mockgen -destination=./mock/user_repository.go -package=mock -source=user_repository.go
//go:generate mockgen -destination=./mock/session_repository.go -package=mock -source=session_repository.go

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("duplicate key")
	// ErrVersionConflict is returned when a document changed between read and write.
	ErrVersionConflict = errors.New("version conflict")
)
