package store

import "errors"

// ErrNotFound is returned when a looked up entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the subject lacks a required permission.
var ErrForbidden = errors.New("forbidden")
