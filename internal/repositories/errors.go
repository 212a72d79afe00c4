package repositories

import "errors"

// ErrNotFound is returned by mutations that matched no row or key.
var ErrNotFound = errors.New("record not found")
