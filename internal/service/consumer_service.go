package service

import (
	"context"
	"encoding/json"
	"log"

	"daeda-site-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ContactSubmittedMessage is the payload published when a contact form
// comes in. The email notification is decoupled from the HTTP request
// so a slow SMTP server never delays the visitor's response.
type ContactSubmittedMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
	notifyEmail  string
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	notifyEmail string,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
		notifyEmail:  notifyEmail,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload ContactSubmittedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal contact message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if cs.notifyEmail == "" {
		log.Printf("[WARN] No team notify email configured, dropping contact notification from %s", payload.Email)
		msg.Ack()
		return
	}

	err := cs.emailService.SendContactNotification(
		cs.notifyEmail,
		payload.Name,
		payload.Email,
		payload.Company,
		payload.Message,
	)
	if err != nil {
		log.Printf("[ERROR] Failed to send contact notification: %v", err)
		msg.Nack() // Retry on SMTP errors
		return
	}

	msg.Ack()
}
