// SPDX-FileCopyrightText: Copyright 2026 Caleb Schmidt
// SPDX-License-Identifier: Apache-2.0

/*
Package cast resolves and applies the closed set of conversions supported
for environment variable values: str, int, float, complex and bool.

A cast specifier is resolved with [Parse], which accepts the canonical
identifier string, a [Kind], or the reflect.Type of the native target type:

	kind, err := cast.Parse("int")
	kind, err := cast.Parse(cast.Int)
	kind, err := cast.Parse(reflect.TypeOf(0))

The resolved kind converts a value with [Kind.Apply]:

	v, err := kind.Apply("8080") // int(8080)

Bool applies truthiness, not strict parsing: any non-empty string converts
to true, including the text "false". See [Kind.Apply] for details.
*/
package cast
