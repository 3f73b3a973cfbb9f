package notification

import (
	"context"
	"fmt"

	"workhub/models"

	"firebase.google.com/go/v4/messaging"
)

// MessageSender is the part of *messaging.Client the push notifier uses.
type MessageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// PushNotifier publishes notifications to an FCM topic that dashboard clients subscribe to.
type PushNotifier struct {
	client MessageSender
	topic  string
}

func NewPushNotifier(client MessageSender, topic string) (*PushNotifier, error) {
	if client == nil || topic == "" {
		return nil, fmt.Errorf("push notifier initialization error: client or topic is empty")
	}
	return &PushNotifier{client: client, topic: topic}, nil
}

func (p *PushNotifier) Notify(ctx context.Context, msg Message) error {
	variant := msg.Variant
	if variant == "" {
		variant = models.VariantDefault
	}

	m := &messaging.Message{
		Topic: p.topic,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Description,
		},
		Data: map[string]string{
			"type":    "toast",
			"variant": variant,
		},
		Android: &messaging.AndroidConfig{
			Priority: "normal",
		},
	}

	if _, err := p.client.Send(ctx, m); err != nil {
		return fmt.Errorf("PushNotifier: failed to send FCM message: %w", err)
	}
	return nil
}
