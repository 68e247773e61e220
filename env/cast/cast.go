// SPDX-FileCopyrightText: Copyright 2026 Caleb Schmidt
// SPDX-License-Identifier: Apache-2.0

package cast

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Kind identifies one of the five supported conversions for looked-up
// environment values.
type Kind int

const (
	// String yields the value as text.
	String Kind = iota
	// Int parses the value as a base-10 integer.
	Int
	// Float parses the value as a 64-bit float.
	Float
	// Complex parses the value as a 128-bit complex number.
	Complex
	// Bool applies truthiness: any non-empty string is true. See Apply.
	Bool
)

// identifiers maps each Kind to its canonical specifier string.
var identifiers = map[Kind]string{
	String:  "str",
	Int:     "int",
	Float:   "float",
	Complex: "complex",
	Bool:    "bool",
}

// byIdentifier is the reverse of identifiers.
var byIdentifier = func() map[string]Kind {
	m := make(map[string]Kind, len(identifiers))
	for kind, id := range identifiers {
		m[id] = kind
	}
	return m
}()

// byType maps the native Go type of each conversion target to its Kind, so
// callers can pass reflect.TypeOf("") and friends instead of a string.
var byType = map[reflect.Type]Kind{
	reflect.TypeOf(""):            String,
	reflect.TypeOf(int(0)):        Int,
	reflect.TypeOf(float64(0)):    Float,
	reflect.TypeOf(complex128(0)): Complex,
	reflect.TypeOf(false):         Bool,
}

// String returns the canonical specifier for the Kind.
func (k Kind) String() string {
	if id, ok := identifiers[k]; ok {
		return id
	}
	return fmt.Sprintf("cast.Kind(%d)", int(k))
}

// Parse resolves a cast specifier to a Kind. A specifier is either a
// canonical identifier string ("str", "int", "float", "complex", "bool"),
// a Kind, or the reflect.Type of one of the five native target types
// (string, int, float64, complex128, bool). Anything else fails with
// ErrInvalidCast carrying the offending specifier.
func Parse(spec any) (Kind, error) {
	switch s := spec.(type) {
	case Kind:
		if _, ok := identifiers[s]; ok {
			return s, nil
		}
	case string:
		if kind, ok := byIdentifier[s]; ok {
			return kind, nil
		}
	case reflect.Type:
		if kind, ok := byType[s]; ok {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidCast, spec)
}

// Apply converts a looked-up value to the Kind's target type. The input is
// usually a string straight from the environment, but defaults may carry any
// type, so the native Go value forms are accepted too.
//
// Bool deliberately follows shell-style truthiness rather than
// strconv.ParseBool: any non-empty string is true, including the literal
// text "false". Callers that need strict boolean parsing should cast to
// String and parse the result themselves.
func (k Kind) Apply(value any) (any, error) {
	switch k {
	case String:
		return toString(value)
	case Int:
		return toInt(value)
	case Float:
		return toFloat(value)
	case Complex:
		return toComplex(value)
	case Bool:
		return toBool(value), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrInvalidCast, k)
}

func toString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case nil:
		return "", fmt.Errorf("%w: no value to convert to str", ErrConversion)
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, strconv.IntSize)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrConversion, err)
		}
		return int(n), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case nil:
		return 0, fmt.Errorf("%w: no value to convert to int", ErrConversion)
	}
	return 0, fmt.Errorf("%w: cannot convert %T to int", ErrConversion, value)
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrConversion, err)
		}
		return f, nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case nil:
		return 0, fmt.Errorf("%w: no value to convert to float", ErrConversion)
	}
	return 0, fmt.Errorf("%w: cannot convert %T to float", ErrConversion, value)
}

func toComplex(value any) (complex128, error) {
	switch v := value.(type) {
	case string:
		c, err := strconv.ParseComplex(strings.TrimSpace(v), 128)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrConversion, err)
		}
		return c, nil
	case complex128:
		return v, nil
	case float64:
		return complex(v, 0), nil
	case int:
		return complex(float64(v), 0), nil
	case nil:
		return 0, fmt.Errorf("%w: no value to convert to complex", ErrConversion)
	}
	return 0, fmt.Errorf("%w: cannot convert %T to complex", ErrConversion, value)
}

func toBool(value any) bool {
	switch v := value.(type) {
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
	case nil:
		return false
	}
	return true
}
