/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import "errors"

// Sentinel errors for token loading and building.
var (
	// ErrUnknownVersion indicates an unrecognized dialect name.
	ErrUnknownVersion = errors.New("unknown schema version")

	// ErrInvalidToken indicates a token does not conform to the dialect.
	ErrInvalidToken = errors.New("invalid token")

	// ErrCircularReference indicates a circular reference was detected.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrUnresolvedReference indicates a reference could not be resolved.
	ErrUnresolvedReference = errors.New("unresolved token reference")

	// ErrUnknownFormat indicates an output format that is not registered.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrUnknownTransform indicates a transform or transform group that is not registered.
	ErrUnknownTransform = errors.New("unknown transform")
)
