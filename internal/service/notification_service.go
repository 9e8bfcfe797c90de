package service

import (
	"context"
	"fmt"

	"daeda-site-be/internal/pkg/logger"
	"daeda-site-be/internal/pkg/mailer"
	"daeda-site-be/internal/websocket"
	"daeda-site-be/pkg/events"
	pktNats "daeda-site-be/pkg/nats"
)

// LeadDelivery defines how to push real-time lead updates. Implemented
// by the WebSocket Hub.
type LeadDelivery interface {
	Broadcast(notification websocket.Notification)
}

// NotificationService listens for lead events on the NATS bus and fans
// them out to the admin dashboard and the team inbox.
type NotificationService struct {
	subscriber   *pktNats.Subscriber
	delivery     LeadDelivery
	emailService mailer.IEmailService
	notifyEmail  string
	logger       logger.ILogger
}

func NewNotificationService(
	sub *pktNats.Subscriber,
	delivery LeadDelivery,
	emailService mailer.IEmailService,
	notifyEmail string,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		subscriber:   sub,
		delivery:     delivery,
		emailService: emailService,
		notifyEmail:  notifyEmail,
		logger:       log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events."+events.TypeLeadSubmitted, "lead-notifier", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start lead subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Lead notification service started", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", event.EventType()), map[string]interface{}{"type": event.EventType()})

	payload := event.Payload()

	if s.delivery != nil {
		s.delivery.Broadcast(websocket.Notification{
			Type:      "lead_submitted",
			Data:      payload,
			CreatedAt: event.Timestamp(),
		})
	}

	if s.notifyEmail == "" {
		return nil
	}

	name, _ := payload["name"].(string)
	email, _ := payload["email"].(string)
	phone, _ := payload["phone"].(string)
	chatSummary, _ := payload["chat_summary"].(string)

	if err := s.emailService.SendLeadNotification(s.notifyEmail, name, email, phone, chatSummary); err != nil {
		s.logger.Error("NotificationService", "Failed to send lead email", map[string]interface{}{"error": err.Error()})
		// Websocket delivery already happened; do not make NATS retry the email forever
	}

	return nil
}
