package service

import "errors"

var (
	ErrInvalidInput    = errors.New("wrong inputs")
	ErrUserExists      = errors.New("User already exists")
	ErrUserNotFound    = errors.New("No User exists")
	ErrWrongPassword   = errors.New("wrong password")
	ErrActorNotFound   = errors.New("User not found")
	ErrProductNotFound = errors.New("Product not found")
	ErrMissingFields   = errors.New("Name and description are required")
	ErrForbidden       = errors.New("Not authorized to update this product")
)
