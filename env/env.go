// SPDX-FileCopyrightText: Copyright 2026 Caleb Schmidt
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader defines an interface for environment variable access.
// LookupEnv distinguishes a variable that is unset from one set to the
// empty string, which matters for required-variable checks.
type Reader interface {
	Getenv(key string) string
	LookupEnv(key string) (string, bool)
}

// OSReader implements Reader using the standard os package.
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key.
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// LookupEnv returns the value of the environment variable named by the key
// and whether it is present in the process environment.
func (*OSReader) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapReader implements Reader over a plain map. It is useful in tests and
// anywhere a hermetic environment should be supplied instead of the real
// process environment. The map is never mutated.
type MapReader map[string]string

// Getenv returns the value stored under key, or "" if absent.
func (m MapReader) Getenv(key string) string {
	return m[key]
}

// LookupEnv returns the value stored under key and whether it is present.
func (m MapReader) LookupEnv(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}
