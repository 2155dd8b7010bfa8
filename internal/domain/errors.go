package domain

import (
	"errors"
	"fmt"
)

// ErrConflict is returned by repositories when a write violates a unique key.
var ErrConflict = errors.New("unique constraint violation")

// ErrEmailConflict is the ErrConflict raised by the unique email key.
var ErrEmailConflict = fmt.Errorf("%w: email", ErrConflict)

// ErrNotFound is returned by repository writes that matched no row.
var ErrNotFound = errors.New("not found")
