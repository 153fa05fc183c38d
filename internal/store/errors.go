package store

import (
	"errors"
)

var (
	// ErrNotFound covers missing users, posts, and comment targets.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateIdentity means the name or email is already registered.
	// It is raised from the unique constraint at insert time, so two
	// concurrent registrations cannot both win.
	ErrDuplicateIdentity = errors.New("name or email already registered")
	// ErrDuplicateTitle means a post with that title already exists.
	ErrDuplicateTitle = errors.New("title already taken")
	// ErrUnauthenticated means the operation needs a logged-in author.
	ErrUnauthenticated = errors.New("authentication required")
)
