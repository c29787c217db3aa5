// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"

	"github.com/MKhiriev/domain-marketplace/internal/config"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/models"
)

//go:generate mockgen -source=publisher.go -destination=../mock/events_publisher_mock.go -package=mock

// Publisher delivers domain events to subscribers.
type Publisher interface {
	Publish(ctx context.Context, event models.Event) error
	Close() error
}

// NewPublisher returns a Kafka publisher for cfg, or a no-op publisher when
// no brokers are configured.
func NewPublisher(cfg config.Events, log *logger.Logger) Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		log.Warn().Msg("no kafka brokers configured, domain events are disabled")
		return NewNopPublisher()
	}

	return NewKafkaPublisher(cfg, log)
}

type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops every event.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, models.Event) error { return nil }

func (nopPublisher) Close() error { return nil }
