// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/iims/internal/logging"
	"github.com/tomtom215/iims/internal/metrics"
	"github.com/tomtom215/iims/internal/models"
	"github.com/tomtom215/iims/internal/websocket"
)

// TopicAudit carries every appended audit log entry.
const TopicAudit = "iims.audit"

const auditForwarderName = "audit-websocket-forwarder"

// Sink receives encoded events for fan-out to dashboard clients.
type Sink interface {
	BroadcastRaw(messageType string, data []byte) error
}

// Config holds configuration for the in-process bus.
type Config struct {
	// Buffer is the per-subscriber output channel size.
	Buffer int64

	// CloseTimeout is how long the router waits for handlers when closing.
	CloseTimeout time.Duration
}

// DefaultConfig returns defaults for the bus.
func DefaultConfig() Config {
	return Config{
		Buffer:       64,
		CloseTimeout: 5 * time.Second,
	}
}

// Bus is an in-process publish/subscribe bus. Audit entries published on it
// are forwarded to the Sink by a router handler, so a slow or absent
// websocket client never delays the request that wrote the entry.
type Bus struct {
	pubsub *gochannel.GoChannel
	router *message.Router
	sink   Sink
	logger zerolog.Logger
}

// NewBus creates a bus whose router forwards audit entries to sink.
// The router starts with Run.
func NewBus(cfg Config, sink Sink) (*Bus, error) {
	if sink == nil {
		return nil, errors.New("events: sink is required")
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = DefaultConfig().Buffer
	}
	if cfg.CloseTimeout <= 0 {
		cfg.CloseTimeout = DefaultConfig().CloseTimeout
	}

	wmLogger := watermill.NewSlogLogger(logging.NewSlogLogger())

	pubsub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: cfg.Buffer,
	}, wmLogger)

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: cfg.CloseTimeout}, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}
	router.AddMiddleware(middleware.Recoverer)

	b := &Bus{
		pubsub: pubsub,
		router: router,
		sink:   sink,
		logger: logging.WithComponent("events"),
	}
	router.AddConsumerHandler(auditForwarderName, TopicAudit, pubsub, b.forwardAudit)
	return b, nil
}

// PublishAudit publishes entry on TopicAudit. It implements audit.Publisher.
func (b *Bus) PublishAudit(ctx context.Context, entry models.AuditEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		metrics.RecordEventPublish(TopicAudit, err)
		return fmt.Errorf("encode audit entry: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		middleware.SetCorrelationID(id, msg)
	}
	msg.Metadata.Set("action", entry.Action)

	err = b.pubsub.Publish(TopicAudit, msg)
	metrics.RecordEventPublish(TopicAudit, err)
	return err
}

// forwardAudit hands an audit message to the sink. Undecodable payloads are
// dropped; retrying them would never succeed.
func (b *Bus) forwardAudit(msg *message.Message) error {
	var entry models.AuditEntry
	if err := json.Unmarshal(msg.Payload, &entry); err != nil {
		b.logger.Warn().Err(err).Str("message_uuid", msg.UUID).Msg("Dropping undecodable audit event")
		return nil
	}

	if err := b.sink.BroadcastRaw(websocket.MessageTypeAudit, msg.Payload); err != nil {
		b.logger.Warn().Err(err).Str("action", entry.Action).Msg("Failed to forward audit event")
		return nil
	}

	b.logger.Debug().
		Str("action", entry.Action).
		Str("correlation_id", middleware.MessageCorrelationID(msg)).
		Msg("Audit event forwarded")
	return nil
}

// Run runs the router until ctx is canceled.
func (b *Bus) Run(ctx context.Context) error {
	return b.router.Run(ctx)
}

// Running is closed once the router's handlers are subscribed.
func (b *Bus) Running() chan struct{} {
	return b.router.Running()
}

// Close stops the router and the pub/sub.
func (b *Bus) Close() error {
	routerErr := b.router.Close()
	pubsubErr := b.pubsub.Close()
	return errors.Join(routerErr, pubsubErr)
}
