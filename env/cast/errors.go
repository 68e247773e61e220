// SPDX-FileCopyrightText: Copyright 2026 Caleb Schmidt
// SPDX-License-Identifier: Apache-2.0

package cast

import "errors"

// Sentinel errors for cast operations.
var (
	// ErrInvalidCast is returned when a cast specifier does not resolve to
	// one of the five supported kinds. The wrapped message carries the
	// offending specifier for diagnosis.
	ErrInvalidCast = errors.New("not a valid cast")

	// ErrConversion is returned when a resolved cast cannot convert the
	// looked-up value, for example a non-numeric string cast to int.
	ErrConversion = errors.New("cannot convert value")
)
