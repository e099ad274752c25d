package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/pos-service/internal/config"
	"github.com/spec-kit/pos-service/internal/events"
)

// NotificationService emits customer-facing notifications for domain
// events. The email and webhook senders are stubs logging what a real
// integration would send.
type NotificationService struct {
	logger *zap.Logger
	cfg    config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		logger: logger,
		cfg:    cfg,
	}
}

// HandleOrderCreated acknowledges a freshly placed order.
func (n *NotificationService) HandleOrderCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("order placed", zap.Int64("order_id", event.OrderID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

// HandleOrderStatusChanged notifies the configured webhook of a status move.
func (n *NotificationService) HandleOrderStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("order status changed", zap.Int64("order_id", event.OrderID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

// HandleAccountSignedUp sends the welcome email for a fresh signup.
func (n *NotificationService) HandleAccountSignedUp(ctx context.Context, event events.Event) error {
	n.logger.Info("account signed up", zap.Int64("customer_id", event.CustomerID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
