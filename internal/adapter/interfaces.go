// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound network collaborators of the vault.
//
// The only adapter is [FaviconFetcher], which downloads website icons for
// entries that carry a URL. It is strictly best-effort: the service layer
// discards its errors, so nothing here may ever block or fail a vault
// operation.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// FaviconFetcher downloads the icon of the site a URL points to.
type FaviconFetcher interface {
	// Fetch returns the raw icon bytes of the origin of rawURL. The request
	// is bounded by ctx and by the configured timeout.
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}
