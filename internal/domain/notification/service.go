package notification

import "context"

// Message is one outbound email. Body is plain text; templating stays on
// the caller's side.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Service is any transport that can deliver messages. Sends triggered by
// the application: invitation created, password reset requested, tenant
// provisioned.
type Service interface {
	Send(ctx context.Context, msg Message) error
}
