package notifier

// Channel selects how a notification job is delivered.
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
)

// Job is the JSON payload put on the RabbitMQ queue for the notify worker.
// SMS jobs carry the message in Text; email jobs name a Template plus Data.
type Job struct {
	Channel  Channel        `json:"channel"`
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "booking_confirmed", "booking_cancelled"
	Data     map[string]any `json:"data,omitempty"`
}
