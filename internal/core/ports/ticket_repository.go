package ports

import (
	"context"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
)

// ListTicketsFilter carries all query parameters for listing tickets.
// ViewerID is set by the service layer for non-staff callers.
type ListTicketsFilter struct {
	ViewerID  string // empty = no filter (staff); non-empty = created_by or assigned_to must match
	SortField string // any ticket column; defaults to created_at
	SortAsc   bool
	Page      int // 1-based
	Limit     int // rows per page (capped at 100 by service)
}

// TicketRepository defines persistence operations for tickets.
type TicketRepository interface {
	Create(ctx context.Context, t *domain.Ticket) error
	FindByID(ctx context.Context, id string) (*domain.Ticket, error)
	// List returns a page of tickets matching filter and the total count.
	List(ctx context.Context, filter ListTicketsFilter) ([]*domain.Ticket, int64, error)
	// Update replaces the stored ticket document. Status changes must go
	// through UpdateStatus so they are always paired with a history entry.
	Update(ctx context.Context, t *domain.Ticket) error
	UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error
}
