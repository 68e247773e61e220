// SPDX-FileCopyrightText: Copyright 2026 Caleb Schmidt
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/calebschmidt/homefront/env/cast"
)

// Accessor looks up named values in an environment supplied by a Reader.
// It never mutates the environment, so a single Accessor is safe for
// concurrent use.
type Accessor struct {
	reader Reader
	out    io.Writer
}

// Option configures an Accessor created by New.
type Option func(*Accessor)

// WithReader sets the environment source. The default is OSReader.
func WithReader(r Reader) Option {
	return func(a *Accessor) {
		a.reader = r
	}
}

// WithOutput sets the destination for Authenticate's diagnostic output.
// The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(a *Accessor) {
		a.out = w
	}
}

// New creates an Accessor backed by the process environment unless
// configured otherwise.
func New(opts ...Option) *Accessor {
	a := &Accessor{
		reader: &OSReader{},
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Lookup carries the per-variable overrides for GetValue.
type Lookup struct {
	// Required makes an absent variable an error instead of falling back
	// to Default. Required and a truthy Default are mutually exclusive.
	Required bool

	// Default is returned when the variable is not present. May be nil.
	Default any

	// Cast, when non-nil, is a specifier accepted by cast.Parse and is
	// applied to the resolved value, including a supplied Default.
	Cast any
}

// GetValue retrieves the value of the environment variable named by name.
// Leading and trailing whitespace in name is trimmed before lookup. If the
// variable is absent, l.Required makes the call fail with ErrVariableMissing;
// otherwise l.Default is returned. A non-nil l.Cast converts the resolved
// value per the cast package's semantics.
func (a *Accessor) GetValue(name string, l Lookup) (any, error) {
	if l.Required && truthy(l.Default) {
		return nil, ErrRequiredWithDefault
	}

	name = strings.TrimSpace(name)

	raw, present := a.reader.LookupEnv(name)
	if !present && l.Required {
		return nil, fmt.Errorf("%w: %s", ErrVariableMissing, name)
	}

	var value any
	if present {
		value = raw
	} else {
		value = l.Default
	}

	if l.Cast == nil {
		return value, nil
	}
	kind, err := cast.Parse(l.Cast)
	if err != nil {
		return nil, err
	}
	return kind.Apply(value)
}

// GetValues retrieves several variables in one call, preserving input order.
// Each of required, defaults and casts is either nil, which fills the batch
// with false/nil/nil, or a slice with exactly one entry per name:
//
//   - required: []bool
//   - defaults: []any or []string
//   - casts:    []any, []string or []cast.Kind
//
// A non-slice override fails with ErrTypeMismatch and a wrong-length slice
// with ErrLengthMismatch, in both cases before any lookup runs. Overrides
// are validated in the order required, defaults, casts. Element lookups then
// run through GetValue; the first failing element aborts the batch with no
// partial results.
func (a *Accessor) GetValues(names []string, required, defaults, casts any) ([]any, error) {
	requiredFlags, err := normalizeRequired(required, len(names))
	if err != nil {
		return nil, err
	}
	defaultValues, err := normalizeOverride(defaults, len(names), "defaults")
	if err != nil {
		return nil, err
	}
	castSpecs, err := normalizeOverride(casts, len(names), "casts")
	if err != nil {
		return nil, err
	}

	values := make([]any, 0, len(names))
	for i, name := range names {
		value, err := a.GetValue(name, Lookup{
			Required: requiredFlags[i],
			Default:  defaultValues[i],
			Cast:     castSpecs[i],
		})
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// normalizeRequired fills or validates the required override.
func normalizeRequired(override any, count int) ([]bool, error) {
	switch flags := override.(type) {
	case nil:
		return make([]bool, count), nil
	case []bool:
		if len(flags) != count {
			return nil, fmt.Errorf("%w: required has %d entries, want %d", ErrLengthMismatch, len(flags), count)
		}
		return flags, nil
	}
	return nil, fmt.Errorf("%w: required must be a []bool, found %T", ErrTypeMismatch, override)
}

// normalizeOverride fills or validates the defaults and casts overrides.
func normalizeOverride(override any, count int, field string) ([]any, error) {
	var entries []any
	switch values := override.(type) {
	case nil:
		return make([]any, count), nil
	case []any:
		entries = values
	case []string:
		entries = make([]any, len(values))
		for i, v := range values {
			entries[i] = v
		}
	case []cast.Kind:
		entries = make([]any, len(values))
		for i, v := range values {
			entries[i] = v
		}
	default:
		return nil, fmt.Errorf("%w: %s must be a slice, found %T", ErrTypeMismatch, field, override)
	}
	if len(entries) != count {
		return nil, fmt.Errorf("%w: %s has %d entries, want %d", ErrLengthMismatch, field, len(entries), count)
	}
	return entries, nil
}

// truthy reports whether a default value counts as set for the purpose of
// the required/default mutual-exclusion check. nil, empty strings and zero
// values are falsy; everything else is truthy.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case complex128:
		return v != 0
	}
	return true
}
