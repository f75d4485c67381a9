package domain

import "errors"

// Computer errors
var (
	ErrComputerNotFound         = errors.New("computer not found")
	ErrComputerUnavailable      = errors.New("computer is not available")
	ErrComputerInUse            = errors.New("computer has an open session")
	ErrComputerNotInMaintenance = errors.New("computer is not in maintenance")
)

// Session errors
var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionAlreadyClosed = errors.New("session already closed")
)

// Inventory errors
var (
	ErrItemNotFound = errors.New("inventory item not found")
)
