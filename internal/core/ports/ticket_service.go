package ports

import (
	"context"
	"time"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
)

// Caller identifies the authenticated actor behind a service call. Every
// authorization decision is made from these two fields, never from ad hoc
// role comparisons in handlers.
type Caller struct {
	UserID string
	Role   string
}

// IsStaff reports whether the caller has elevated ticket visibility.
func (c Caller) IsStaff() bool {
	return domain.IsStaffRole(c.Role)
}

// CreateTicketInput carries all data needed to open a new ticket. Status is
// always forced to "new" by the service; CreatedBy comes from the caller.
type CreateTicketInput struct {
	Title       string
	Description string
	Type        string
	Priority    string
}

// UpdateTicketInput is a partial update: nil fields are left untouched.
// Status is deliberately absent; status changes go through StartProgress
// and Close so they always produce a history entry.
type UpdateTicketInput struct {
	Title       *string
	Description *string
	Type        *string
	Priority    *string
	AssignedTo  *string
}

// ListTicketsInput carries all parameters for the list endpoint.
type ListTicketsInput struct {
	SortField string
	SortAsc   bool
	Page      int
	Limit     int
}

// ListTicketsResult is one page of tickets plus the total count, so callers
// can compute page counts.
type ListTicketsResult struct {
	Items      []*domain.Ticket
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// StatusChangeView is a history entry decorated with the acting user's
// display name for rendering "resolved by X at time T".
type StatusChangeView struct {
	TicketID      string
	OldStatus     domain.TicketStatus
	NewStatus     domain.TicketStatus
	ChangedBy     string
	ChangedByName string
	CreatedAt     time.Time
}

// TicketService defines use-case operations for tickets, including the
// status transition log.
type TicketService interface {
	Create(ctx context.Context, caller Caller, in CreateTicketInput) (*domain.Ticket, error)
	Get(ctx context.Context, caller Caller, id string) (*domain.Ticket, error)
	List(ctx context.Context, caller Caller, in ListTicketsInput) (*ListTicketsResult, error)
	Update(ctx context.Context, caller Caller, id string, in UpdateTicketInput) (*domain.Ticket, error)

	// StartProgress moves a new or resolved ticket to in_progress and records
	// a history entry. On any other status it is a no-op and returns false.
	StartProgress(ctx context.Context, caller Caller, id string) (bool, error)
	// Close moves the ticket to resolved regardless of current status and
	// records a history entry capturing the prior status.
	Close(ctx context.Context, caller Caller, id string) error

	// LastStatusChange returns the newest history entry, or nil when the
	// ticket has never changed status.
	LastStatusChange(ctx context.Context, ticketID string) (*StatusChangeView, error)
	StatusHistory(ctx context.Context, ticketID string) ([]StatusChangeView, error)

	Subscribe(ctx context.Context, caller Caller, ticketID string) error
	Unsubscribe(ctx context.Context, caller Caller, ticketID string) error
}
