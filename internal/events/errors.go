// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import "errors"

var (
	// ErrEncodingEvent is returned when an event payload cannot be
	// marshalled to JSON.
	ErrEncodingEvent = errors.New("failed to encode event")

	// ErrPublishingEvent is returned when the broker rejects or times out a
	// write.
	ErrPublishingEvent = errors.New("failed to publish event")
)
