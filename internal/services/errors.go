// Package services defines the business logic for identities, executors,
// requests, offers, matching, dispatch and settings. This file centralizes
// common service-level error values so that they can be consistently returned
// by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and translation
// into user-facing messages or HTTP status codes should be performed at the
// handler/controller layer.
package services

import "errors"

// Identity-related errors.
var (
	// ErrUserNotFound indicates that the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidRole is returned when a role value is outside the allowed
	// set for explicit selection (client or executor).
	ErrInvalidRole = errors.New("role must be client or executor")

	// ErrAdminRestricted is returned when an actor outside the configured
	// admin set attempts to claim the admin role.
	ErrAdminRestricted = errors.New("admin role is restricted")
)

// Executor-related errors.
var (
	// ErrExecutorNotFound indicates that the referenced executor does not exist.
	ErrExecutorNotFound = errors.New("executor not found")

	// ErrAddressingPath is returned when an executor registration does not
	// carry exactly one of a handle or a direct channel id.
	ErrAddressingPath = errors.New("exactly one of handle or channel id is required")

	// ErrNoCategories is returned when an executor registration carries no
	// usable category tags.
	ErrNoCategories = errors.New("at least one category is required")
)

// Request- and offer-related errors.
var (
	// ErrRequestNotFound indicates that the referenced request does not exist.
	ErrRequestNotFound = errors.New("request not found")

	// ErrOfferNotFound indicates that the referenced offer does not exist.
	ErrOfferNotFound = errors.New("offer not found")

	// ErrOfferAlreadyAccepted is returned when an offer already has a deal;
	// accepting is terminal and happens at most once per offer.
	ErrOfferAlreadyAccepted = errors.New("offer already accepted")

	// ErrInvalidRateType is returned when a rate type is outside the allowed
	// set (hour, shift, object).
	ErrInvalidRateType = errors.New("rate type must be hour, shift or object")

	// ErrInvalidRate is returned when a rate value does not parse as a
	// positive number.
	ErrInvalidRate = errors.New("rate value must be a positive number")
)

// Intake-related errors.
var (
	// ErrNoIntake indicates that the actor has no conversation in progress
	// (it may have expired or been cancelled).
	ErrNoIntake = errors.New("no intake in progress")

	// ErrWrongState is the target for errors.Is checks against
	// WrongStateError; it never escapes on its own.
	ErrWrongState = errors.New("input does not match the current intake step")

	// ErrUnknownCategory is returned when a category is not in the
	// configured catalog.
	ErrUnknownCategory = errors.New("category is not in the catalog")

	// ErrEmptyInput is returned when a step receives blank text input.
	ErrEmptyInput = errors.New("input is empty")

	// ErrAddressNotFound is returned when forward geocoding yields no
	// candidates; the caller re-prompts in the same step.
	ErrAddressNotFound = errors.New("address not found")

	// ErrBadPick is returned when a geocode candidate index is out of range.
	ErrBadPick = errors.New("pick is out of range")

	// ErrInvalidLocation is returned when coordinates are outside the valid
	// latitude/longitude ranges.
	ErrInvalidLocation = errors.New("coordinates out of range")

	// ErrInvalidMode is returned when a dispatch mode is outside the allowed
	// set (auction, catalog).
	ErrInvalidMode = errors.New("mode must be auction or catalog")
)

// WrongStateError reports input that arrived for a different intake step than
// the conversation is waiting on. It carries the step to re-prompt for.
type WrongStateError struct {
	// Current is the step the conversation is actually waiting on.
	Current string
}

// Error implements the error interface.
func (e *WrongStateError) Error() string {
	return "input does not match the current intake step: " + e.Current
}

// Is reports target equality against ErrWrongState so callers can use
// errors.Is without knowing the concrete type.
func (e *WrongStateError) Is(target error) bool { return target == ErrWrongState }
