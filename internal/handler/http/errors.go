// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

var (
	// ErrInvalidBody wraps JSON decoding failures of request bodies.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrInvalidParam wraps malformed path or query parameters.
	ErrInvalidParam = errors.New("invalid request parameter")

	// ErrStreamingUnsupported is returned when the response writer cannot flush.
	ErrStreamingUnsupported = errors.New("streaming is not supported")

	// ErrChangeFeedDisabled is returned when no change feed is configured.
	ErrChangeFeedDisabled = errors.New("change feed is disabled")

	errRouteNotFound = errors.New("route not found")
)
