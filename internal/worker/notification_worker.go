package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/pos-service/internal/events"
	"github.com/spec-kit/pos-service/internal/service"
)

// StartNotificationWorker subscribes the notification service to the order
// and signup events it reacts to. Handlers run synchronously on the
// publishing goroutine; a failed notification never fails the request that
// triggered it.
func StartNotificationWorker(dispatcher events.Dispatcher, notifications *service.NotificationService, logger *zap.Logger) {
	if dispatcher == nil || notifications == nil {
		return
	}

	dispatcher.Subscribe(events.EventOrderCreated, notifications.HandleOrderCreated)
	dispatcher.Subscribe(events.EventOrderStatusChanged, notifications.HandleOrderStatusChanged)
	dispatcher.Subscribe(events.EventAccountSignedUp, notifications.HandleAccountSignedUp)

	logger.Info("notification worker subscribed",
		zap.Strings("events", []string{
			string(events.EventOrderCreated),
			string(events.EventOrderStatusChanged),
			string(events.EventAccountSignedUp),
		}))
}
