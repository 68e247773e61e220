// SPDX-FileCopyrightText: Copyright 2026 Caleb Schmidt
// SPDX-License-Identifier: Apache-2.0

package env

import "errors"

// Errors returned by the accessor. Wrapped occurrences attach context
// (variable names, offending types) via fmt.Errorf("%w: ...") and remain
// matchable with errors.Is.
var (
	// ErrRequiredWithDefault indicates that a lookup set both Required and a
	// truthy Default. The two are mutually exclusive: a variable with a
	// fallback value cannot also be mandatory.
	ErrRequiredWithDefault = errors.New("required and default are mutually exclusive options, only one may be set")

	// ErrVariableMissing indicates that a required variable is not present in
	// the environment. The wrapped message carries the trimmed variable name.
	ErrVariableMissing = errors.New("variable is not set in this environment")

	// ErrTypeMismatch indicates that a batch override was supplied as
	// something other than a slice of the accepted element types.
	ErrTypeMismatch = errors.New("batch override must be a slice")

	// ErrLengthMismatch indicates that a batch override slice does not have
	// one entry per variable name.
	ErrLengthMismatch = errors.New("batch override length does not match the number of names")
)
