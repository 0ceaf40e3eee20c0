package domain

import "time"

// MaxCommentLength caps reply content. The bound used to live only in the web
// form; it is now enforced on the server as well.
const MaxCommentLength = 1000

// Comment is a single reply attached to a ticket. Comments are ordered by
// created_at descending everywhere: index 0 is always the most recent reply.
type Comment struct {
	ID        string    `json:"id" bson:"_id"`
	TicketID  string    `json:"ticket_id" bson:"ticket_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// StatusHistoryEntry is one append-only audit record of a status transition.
type StatusHistoryEntry struct {
	ID        string       `json:"id" bson:"_id"`
	TicketID  string       `json:"ticket_id" bson:"ticket_id"`
	OldStatus TicketStatus `json:"old_status" bson:"old_status"`
	NewStatus TicketStatus `json:"new_status" bson:"new_status"`
	ChangedBy string       `json:"changed_by" bson:"changed_by"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
}
