package export

import "errors"

var (
	// ErrEmailRequired is returned by a Mailer when no address was given.
	ErrEmailRequired = errors.New("export: email address required")

	// ErrInvalidEmail is returned by a Mailer for a malformed address.
	ErrInvalidEmail = errors.New("export: invalid email address")

	// ErrNoComposition is returned when there is nothing to export.
	ErrNoComposition = errors.New("export: no composition")
)
