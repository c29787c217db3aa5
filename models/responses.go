// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// EventType names a domain event published to the message broker.
type EventType string

const (
	EventUserRegistered      EventType = "user.registered"
	EventDomainCreated       EventType = "domain.created"
	EventDomainStatusChanged EventType = "domain.status_changed"
	EventDomainDeleted       EventType = "domain.deleted"
	EventCategoryDeleted     EventType = "category.deleted"
)

// Event is a domain event. Key identifies the entity the event is about and
// is used as the message key so that events for one entity stay ordered.
type Event struct {
	Type       EventType `json:"type"`
	Key        string    `json:"-"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// StatusChange is the payload of a domain.status_changed event.
type StatusChange struct {
	DomainID int64        `json:"domain_id"`
	From     DomainStatus `json:"from"`
	To       DomainStatus `json:"to"`
}
