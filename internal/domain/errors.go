package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog authoring errors (fatal at construction time)
	ErrMsgDuplicateAbility  = "duplicate ability id"
	ErrMsgUnknownDependency = "dependency references unknown ability"
	ErrMsgDependencyCycle   = "dependency cycle detected"
	ErrMsgInvalidRarity     = "invalid rarity"

	// Selection errors
	ErrMsgCatalogExhausted = "catalog exhausted: no eligible ability remains"

	// Session errors
	ErrMsgSessionNotFound = "session not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog authoring errors
	ErrDuplicateAbility  = errors.New(ErrMsgDuplicateAbility)
	ErrUnknownDependency = errors.New(ErrMsgUnknownDependency)
	ErrDependencyCycle   = errors.New(ErrMsgDependencyCycle)
	ErrInvalidRarity     = errors.New(ErrMsgInvalidRarity)

	// Selection errors
	ErrCatalogExhausted = errors.New(ErrMsgCatalogExhausted)

	// Session errors
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
