// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultTokenIssuer      = "edims"
	defaultTokenDuration    = 24 * time.Hour
	defaultPasswordHashCost = 10
	defaultLogLevel         = "info"

	defaultObjectsEndpoint      = "https://storage.googleapis.com"
	defaultObjectsRegion        = "auto"
	defaultObjectsPublicBaseURL = "https://storage.googleapis.com"

	defaultHTTPAddress    = ":8080"
	defaultRequestTimeout = 30 * time.Second
	defaultMaxUploadSize  = 10 << 20
)

// defaults returns the lowest-priority config source. Secrets, the DSN and
// the bucket name have no defaults and must be configured explicitly.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
			LogLevel:         defaultLogLevel,
		},
		Storage: Storage{
			Objects: Objects{
				Endpoint:      defaultObjectsEndpoint,
				Region:        defaultObjectsRegion,
				PublicBaseURL: defaultObjectsPublicBaseURL,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			MaxUploadSize:  defaultMaxUploadSize,
		},
	}
}
