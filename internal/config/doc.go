// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the stash journal binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win; later ones only fill fields left empty):
//  1. Environment variables (an optional .env file is loaded first)
//  2. Command-line flags
//  3. JSON config file (-c / -config / CONFIG)
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
