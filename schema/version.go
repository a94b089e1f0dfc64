/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema identifies the token file dialects tokenwind reads.
package schema

import "fmt"

// Version represents a token file dialect.
type Version int

const (
	// Unknown represents an undetected or unrecognized dialect.
	Unknown Version = iota

	// Legacy is the Style Dictionary format, where leaves carry a bare "value" key.
	Legacy

	// DTCG is the Design Tokens Community Group format, where leaves carry "$value".
	DTCG
)

// String returns the string representation of the dialect.
func (v Version) String() string {
	switch v {
	case Legacy:
		return "legacy"
	case DTCG:
		return "dtcg"
	default:
		return "unknown"
	}
}

// ValueKey returns the key that marks a token leaf in this dialect.
func (v Version) ValueKey() string {
	if v == Legacy {
		return "value"
	}
	return "$value"
}

// TypeKey returns the key holding a token or group type.
func (v Version) TypeKey() string {
	if v == Legacy {
		return "type"
	}
	return "$type"
}

// DescriptionKey returns the key holding a token description.
func (v Version) DescriptionKey() string {
	if v == Legacy {
		return "comment"
	}
	return "$description"
}

// FromString returns the dialect from a string representation.
func FromString(s string) (Version, error) {
	switch s {
	case "legacy", "style-dictionary", "sd":
		return Legacy, nil
	case "dtcg", "draft", "v2025.10", "2025.10":
		return DTCG, nil
	default:
		return Unknown, fmt.Errorf("%w: %s", ErrUnknownVersion, s)
	}
}
