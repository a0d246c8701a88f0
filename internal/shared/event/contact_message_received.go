package event

const ContactMessageReceivedDestination string = "contact_message_received"
const ContactMessageReceivedConsumerMail string = "contact_message_received_mail"

// HeaderCorrelationID carries the request correlation id across the broker.
const HeaderCorrelationID string = "cID"

type ContactMessageReceivedMessage struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Message    string `json:"message"`
	RemoteIP   string `json:"remote_ip,omitempty"`
	ReceivedAt int64  `json:"received_at"`
}
