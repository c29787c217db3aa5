// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled. Workers aggregate calls it in its own
// goroutine.
type Worker interface {
	Run(ctx context.Context)
}

// HealthReporter receives the outcome of every health probe.
type HealthReporter interface {
	SetServing(serving bool)
}
