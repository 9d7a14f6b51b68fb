// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "errors"

// Errors returned by the override loaders. The resolver matches them with
// errors.Is to decide how loudly a fallback is reported.
var (
	// ErrPathAbsent indicates that no location was configured for a source.
	ErrPathAbsent = errors.New("resource path is not set")
	// ErrResourceNotFound indicates that the configured location does not
	// exist or cannot be read.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrResourceMalformed indicates that the resource exists but could not
	// be decoded into a configuration fragment.
	ErrResourceMalformed = errors.New("resource malformed")
	// ErrSectionNotFound indicates that the project configuration has no
	// section for the current runtime environment.
	ErrSectionNotFound = errors.New("environment section not found")
)
