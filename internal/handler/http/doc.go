// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the JSON API of the journal.
//
// It wires the chi router, request handlers and middleware. Authentication,
// trace ids, access logging, request metrics and response compression are
// handled here before requests reach the service layer.
package http
