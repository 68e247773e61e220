// SPDX-FileCopyrightText: Copyright 2026 Caleb Schmidt
// SPDX-License-Identifier: Apache-2.0

package env

import "fmt"

// AuthenticationEnvironmentVar names the variable that describes the
// authentication context the process runs in. The value is a colon- and
// slash-delimited descriptor along the lines of
//
//	[country]:[top-level org]:[specificity-path]:[addendum]
//
// for example "US:NASA:FINANCE/COMPUTE_CLOUD3/DESKTOP:PRIVILEGED_USER".
// The format is a proposed convention, not an enforced contract; this
// package treats the value as opaque text.
const AuthenticationEnvironmentVar = "AUTHENTICATION_ENVIRONMENT"

// Authenticate is a placeholder for delegating authentication to a handler
// chosen from the current authentication context. It enforces the same
// required/default mutual exclusion as GetValue, reads
// AuthenticationEnvironmentVar and writes a diagnostic line naming the
// resolved context to the accessor's output writer. No authentication is
// performed.
//
// TODO: delegate to a context-specific handler once the descriptor format
// is settled.
func (a *Accessor) Authenticate(required bool, defaultValue any) error {
	if required && truthy(defaultValue) {
		return ErrRequiredWithDefault
	}

	context, err := a.GetValue(AuthenticationEnvironmentVar, Lookup{})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "Authenticating in environment %v...\n", context)
	return err
}
