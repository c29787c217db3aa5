// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strconv"

	"github.com/MKhiriev/domain-marketplace/internal/events"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/models"
)

// publishEvent emits an event after the change it describes has been
// committed. A failed publish is logged and otherwise ignored.
func publishEvent(ctx context.Context, publisher events.Publisher, eventType models.EventType, id int64, payload any) {
	if publisher == nil {
		return
	}

	err := publisher.Publish(ctx, models.Event{
		Type:    eventType,
		Key:     strconv.FormatInt(id, 10),
		Payload: payload,
	})
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "publishEvent").
			Str("type", string(eventType)).
			Int64("id", id).
			Msg("failed to publish event")
	}
}
