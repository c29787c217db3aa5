// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the operator flows of marketctl.
//
// It seeds the default catalogue and wraps the read-only operations that
// operators run against a live marketplace server. All calls go through an
// [adapter.MarketplaceAPI].
package client
