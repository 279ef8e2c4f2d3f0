package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrStatusConflict     = errors.New("order status changed concurrently")
	ErrReferenced         = errors.New("record referenced by other rows")
	ErrReturnExceedsOrder = errors.New("returned quantity exceeds ordered quantity")
)
