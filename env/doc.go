// SPDX-FileCopyrightText: Copyright 2026 Caleb Schmidt
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides a unified interface for reading and casting
environment variable values, with required/default handling and batch
lookups.

# Basic Usage

An Accessor reads through a Reader, which defaults to the process
environment:

	accessor := env.New()
	port, err := accessor.GetValue("PORT", env.Lookup{Cast: "int"})
	host, err := accessor.GetValue("HOST", env.Lookup{Default: "localhost"})
	token, err := accessor.GetValue("API_TOKEN", env.Lookup{Required: true})

Required and a truthy Default are mutually exclusive; setting both fails
with ErrRequiredWithDefault. Batch lookups take parallel override slices,
each either nil or with one entry per name:

	values, err := accessor.GetValues(
		[]string{"HOST", "PORT"},
		[]bool{false, true},          // required
		[]any{"localhost", nil},      // defaults
		[]any{nil, "int"},            // casts
	)

# Testing

The Reader interface allows injecting a fake to avoid mutating the real
process environment. MapReader covers most cases:

	accessor := env.New(env.WithReader(env.MapReader{"PORT": "8080"}))

A generated gomock Reader is available in the mocks sub-package for tests
that want to assert on lookup traffic:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().LookupEnv("PORT").Return("8080", true)

# Design

The environment is externally owned and read-only here; nothing in this
package writes to it, so Accessors are safe for concurrent use without
locking.
*/
package env
