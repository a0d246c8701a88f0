package entity

import (
	"strings"
	"time"
)

// Message is a contact form submission in flight. It is never persisted.
type Message struct {
	ID         int64
	Name       string
	Email      string
	Body       string
	RemoteIP   string
	ReceivedAt time.Time
}

type Delivery string

const (
	DeliveryMail      Delivery = "mail"
	DeliveryMessaging Delivery = "messaging"
)

func (d Delivery) String() string {
	return string(d)
}

// DeliveryFromString parses a configured delivery, defaulting to mail.
func DeliveryFromString(s string) Delivery {
	if strings.EqualFold(strings.TrimSpace(s), string(DeliveryMessaging)) {
		return DeliveryMessaging
	}

	return DeliveryMail
}
