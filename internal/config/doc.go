// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the EDIMS server.
//
// Configuration is assembled from multiple sources; a non-zero field of a
// higher-priority source is never overwritten by a lower one:
//  1. .env file (exported into the environment, never overriding it)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//  5. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
