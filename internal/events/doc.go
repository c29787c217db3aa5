// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events publishes marketplace domain events to Kafka.
//
// Events are emitted by the service layer after the corresponding database
// transaction has committed. Delivery is best effort: callers log a failed
// publish and carry on.
package events
