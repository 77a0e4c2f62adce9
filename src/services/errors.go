package services

import "errors"

var (
	ErrForbidden         = errors.New("forbidden access")
	ErrDuplicateCheckout = errors.New("payment already recorded")
	ErrInvalidRole       = errors.New("role cannot be assigned")
)
