package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Kael08/JOB-PORTAL/internal/pkg/constants"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/models"
)

// Publisher sends raw messages to a subject
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSGateway publishes auth events to NATS
type NATSGateway struct {
	client Publisher
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client Publisher) *NATSGateway {
	return &NATSGateway{client: client}
}

// PublishAccountRegistered announces a newly established account
func (g *NATSGateway) PublishAccountRegistered(ctx context.Context, event *models.AuthEvent) error {
	return g.publish(constants.SubjectAccountRegistered, event)
}

// PublishRoleChanged announces a role switch
func (g *NATSGateway) PublishRoleChanged(ctx context.Context, event *models.AuthEvent) error {
	return g.publish(constants.SubjectRoleChanged, event)
}

func (g *NATSGateway) publish(subject string, event *models.AuthEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", subject, err)
	}
	if err := g.client.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", subject, err)
	}
	return nil
}

// NoopEventGateway drops events when no message bus is configured
type NoopEventGateway struct{}

// PublishAccountRegistered does nothing
func (NoopEventGateway) PublishAccountRegistered(ctx context.Context, event *models.AuthEvent) error {
	return nil
}

// PublishRoleChanged does nothing
func (NoopEventGateway) PublishRoleChanged(ctx context.Context, event *models.AuthEvent) error {
	return nil
}
