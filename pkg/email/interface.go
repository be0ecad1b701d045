package email

import "context"

// Mailer delivers transactional email.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

type Message struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}
