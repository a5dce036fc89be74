// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport layer of the EDIMS server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as bearer authentication, request tracing, access logging,
// CORS, and response compression are handled in this package before
// requests are delegated to the service layer. Errors coming back from the
// service layer are translated into HTTP responses by a single table in
// errors_mapper.go.
package http
