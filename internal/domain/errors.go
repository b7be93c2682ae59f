package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInvalidInput   = "invalid input"
	ErrMsgUnknownPolicy  = "unknown threshold policy"
	ErrMsgItemNotFound   = "item not found"
	ErrMsgOnCooldown     = "action on cooldown"
	ErrMsgPrefsNotFound  = "preferences not found"
	ErrMsgOCRUnavailable = "ocr backend unavailable"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap with fmt.Errorf("%w: details", domain.ErrXxx) for additional context.
var (
	ErrInvalidInput   = errors.New(ErrMsgInvalidInput)
	ErrUnknownPolicy  = errors.New(ErrMsgUnknownPolicy)
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrOnCooldown     = errors.New(ErrMsgOnCooldown)
	ErrPrefsNotFound  = errors.New(ErrMsgPrefsNotFound)
	ErrOCRUnavailable = errors.New(ErrMsgOCRUnavailable)
)
