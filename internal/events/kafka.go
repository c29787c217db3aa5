// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/domain-marketplace/internal/config"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/models"
	"github.com/segmentio/kafka-go"
)

const (
	writeTimeout   = 10 * time.Second
	publishTimeout = 5 * time.Second
)

// messageWriter is the subset of [kafka.Writer] used by the publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer messageWriter
	topic  string
	now    func() time.Time

	logger *logger.Logger
}

// NewKafkaPublisher returns a publisher writing to cfg.KafkaTopic on
// cfg.KafkaBrokers.
func NewKafkaPublisher(cfg config.Events, log *logger.Logger) Publisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		WriteTimeout:           writeTimeout,
		AllowAutoTopicCreation: true,
	}

	log.Info().
		Strs("brokers", cfg.KafkaBrokers).
		Str("topic", cfg.KafkaTopic).
		Msg("kafka event publisher configured")

	return newKafkaPublisher(writer, cfg.KafkaTopic, log)
}

func newKafkaPublisher(writer messageWriter, topic string, log *logger.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		writer: writer,
		topic:  topic,
		now:    time.Now,
		logger: log,
	}
}

// Publish encodes event as JSON and writes it keyed by event.Key. A zero
// OccurredAt is filled with the current time.
func (p *kafkaPublisher) Publish(ctx context.Context, event models.Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = p.now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingEvent, err)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Key),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPublishingEvent, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "kafkaPublisher.Publish").
		Str("type", string(event.Type)).
		Str("key", event.Key).
		Msg("event published")

	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
