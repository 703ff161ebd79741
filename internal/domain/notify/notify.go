package notify

import "context"

// Notifier delivers a message to a single recipient. Implementations must
// treat delivery as best-effort; callers decide whether a failure matters.
type Notifier interface {
	Send(ctx context.Context, to, subject, textBody, htmlBody string) error
}

type Message struct {
	Subject  string
	TextBody string
	HTMLBody string
}
