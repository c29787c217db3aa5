// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the marketplace.
//
// It exposes route wiring, request handlers and middleware. Cross-cutting
// concerns such as authentication, role checks, request tracing, access
// logging, response compression and per-IP rate limiting are handled in this
// package before requests are delegated to the service layer.
package http
