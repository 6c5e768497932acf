package domain

import "errors"

// Sentinel errors shared by every repository; delivery maps them to HTTP codes.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicate      = errors.New("duplicate record")
	ErrBadCredentials = errors.New("invalid email or password")
	ErrForbidden      = errors.New("not authorized")
)
