package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrInvalidPlayerType = errors.New("invalid player type")

	// Configuration errors
	ErrInvalidStorageType  = errors.New("invalid storage type")
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// Result history errors
	ErrResultNotFound = errors.New("game result not found")
)
