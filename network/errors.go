// SPDX-License-Identifier: MIT
package network

import "errors"

// Sentinel errors for the network facade.
var (
	// ErrInvalidName is returned when a user name fails validation.
	ErrInvalidName = errors.New("network: invalid user name")

	// ErrDuplicateUser is returned by AddUser when the name is already taken.
	ErrDuplicateUser = errors.New("network: user already exists")

	// ErrUserNotFound is returned when an operation references an unknown user.
	ErrUserNotFound = errors.New("network: user not found")

	// ErrSelfRelation is returned when a user tries to befriend or follow themselves.
	ErrSelfRelation = errors.New("network: self relation not allowed")

	// ErrOptionViolation is returned by New-time options carrying invalid values.
	ErrOptionViolation = errors.New("network: option violation")
)
