package domain

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrSessionNotFound = errors.New("session not found")
	ErrUnparsable      = errors.New("unparsable timestamp")
)
