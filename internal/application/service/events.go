package service

import (
	"context"
	"time"
)

// ViewEvent records that a view-model was served.
type ViewEvent struct {
	Resource  string    `json:"resource"`
	Key       string    `json:"key,omitempty"`
	Lang      string    `json:"lang"`
	RequestID string    `json:"request_id"`
	Degraded  bool      `json:"degraded,omitempty"`
	At        time.Time `json:"at"`
}

type ViewEventPublisher interface {
	PublishView(ctx context.Context, ev ViewEvent) error
}

type noopPublisher struct{}

func (noopPublisher) PublishView(context.Context, ViewEvent) error { return nil }

// NoopEvents drops every event.
var NoopEvents ViewEventPublisher = noopPublisher{}
