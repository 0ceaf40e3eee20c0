package ports

import (
	"context"
	"time"
)

// CommentView is a comment annotated with the author's display name,
// resolved through the profile directory.
type CommentView struct {
	ID         string
	TicketID   string
	UserID     string
	AuthorName string
	Content    string
	CreatedAt  time.Time
}

// PostCommentResult reports what a successful reply did beyond inserting the
// comment row.
type PostCommentResult struct {
	CommentID string
	// StartedProgress is true when this was the first reply on a "new"
	// ticket and the ticket auto-transitioned to in_progress.
	StartedProgress bool
}

// CommentService defines use-case operations for ticket reply threads.
type CommentService interface {
	// List returns the thread newest-first, authorization-checked against the
	// same visibility rule as ticket reads.
	List(ctx context.Context, caller Caller, ticketID string) ([]CommentView, error)
	// Post appends a reply and, when it is the first comment on a "new"
	// ticket, transitions the ticket to in_progress before returning.
	// Notification dispatch is the caller's post-commit concern.
	Post(ctx context.Context, caller Caller, ticketID, content string) (*PostCommentResult, error)
	// Delete removes a comment, allowed only for the single most recent
	// comment of an unresolved ticket, by its author or an admin.
	Delete(ctx context.Context, caller Caller, commentID string) error
}
