// Package services defines the business logic for the médicos directory.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer.
package services

import "errors"

var (
	// ErrMedicoNotFound indicates that the requested médico does not exist.
	ErrMedicoNotFound = errors.New("medico not found")

	// ErrDuplicateEmail is returned when an insert or update collides with
	// an e-mail address already present in the directory.
	ErrDuplicateEmail = errors.New("correo ya registrado")

	// ErrStorageUnavailable wraps connection or statement failures from the
	// persistence layer. Operations are never retried; callers decide how to
	// degrade.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
