package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound      = "player not found"
	ErrMsgPlayerAlreadyExists = "player already exists"

	// Quest errors
	ErrMsgQuestNotFound       = "quest not found"
	ErrMsgQuestNotEligible    = "quest level requirement not met"
	ErrMsgQuestAlreadyClaimed = "quest already claimed"

	// Recipe/Crafting errors
	ErrMsgRecipeNotFound = "recipe not found"

	// Cosmetics errors
	ErrMsgThemeNotFound  = "theme not found"
	ErrMsgSkinNotFound   = "table skin not found"
	ErrMsgCosmeticLocked = "cosmetic is locked"

	// Validation errors
	ErrMsgInvalidArgument = "invalid argument"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound      = errors.New(ErrMsgPlayerNotFound)
	ErrPlayerAlreadyExists = errors.New(ErrMsgPlayerAlreadyExists)

	// Quest errors
	ErrQuestNotFound       = errors.New(ErrMsgQuestNotFound)
	ErrQuestNotEligible    = errors.New(ErrMsgQuestNotEligible)
	ErrQuestAlreadyClaimed = errors.New(ErrMsgQuestAlreadyClaimed)

	// Recipe/Crafting errors
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)

	// Cosmetics errors
	ErrThemeNotFound  = errors.New(ErrMsgThemeNotFound)
	ErrSkinNotFound   = errors.New(ErrMsgSkinNotFound)
	ErrCosmeticLocked = errors.New(ErrMsgCosmeticLocked)

	// Validation errors
	ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)
)

// InvalidArgumentError is a precondition violation raised by the gamification
// core before any computation proceeds. It names the offending field and, when
// one was supplied, the offending value so callers can log useful diagnostics.
// It always matches errors.Is(err, ErrInvalidArgument).
type InvalidArgumentError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %s, got %v", e.Field, e.Reason, e.Value)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// NewInvalidArgument builds an InvalidArgumentError for a field with an
// offending value. Pass a nil value for required-presence violations.
func NewInvalidArgument(field string, value interface{}, reason string) error {
	return &InvalidArgumentError{Field: field, Value: value, Reason: reason}
}
