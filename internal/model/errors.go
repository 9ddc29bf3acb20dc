package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Team errors
	ErrTeamNotFound = errors.New("team not found")

	// Game setting errors
	ErrGameSettingNotFound = errors.New("game setting not found")
)
