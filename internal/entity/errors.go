package entity

import "errors"

// Domain errors surfaced by usecases. The HTTP layer maps them to status
// codes in one place; everything else becomes a generic 500.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotAuthorized   = errors.New("not authorized")
	ErrNotFound        = errors.New("not found")
	ErrSelfAction      = errors.New("cannot target yourself")
)
