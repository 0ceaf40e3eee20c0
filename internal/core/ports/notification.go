package ports

import "context"

// Mailer abstracts the transactional email provider.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}

// NotificationJob describes one comment whose interested parties need email.
type NotificationJob struct {
	TicketID  string
	CommentID string
	Content   string
	ActorID   string
}

// NotificationEnqueuer is the fire-and-forget path used after a comment is
// persisted through the main API.
type NotificationEnqueuer interface {
	Enqueue(job NotificationJob)
}

// NotificationService resolves the recipient set for a new comment and
// dispatches one email per recipient group. Delivery failures never undo the
// already-saved comment.
type NotificationService interface {
	Deliver(ctx context.Context, job NotificationJob) error
	// SendTest fires the hard-coded diagnostic email.
	SendTest(ctx context.Context) error
}
