// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. The path and JSON errors are
// reported to the client verbatim.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoIdentityInContext means a session route ran without the auth
	// middleware in front of it.
	ErrNoIdentityInContext = errors.New("no authenticated user in request context")

	ErrInvalidPathParam = errors.New("invalid path parameter")
	ErrInvalidJSON      = errors.New("invalid JSON was passed")
)
