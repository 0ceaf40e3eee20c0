package ports

import (
	"context"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
)

// CommentRepository defines persistence operations for ticket replies.
type CommentRepository interface {
	Insert(ctx context.Context, c *domain.Comment) error
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	// ListByTicket returns comments ordered newest-first (index 0 = latest).
	ListByTicket(ctx context.Context, ticketID string) ([]*domain.Comment, error)
	CountByTicket(ctx context.Context, ticketID string) (int64, error)
	Delete(ctx context.Context, id string) error
}

// HistoryRepository stores the append-only status transition log.
type HistoryRepository interface {
	Insert(ctx context.Context, e *domain.StatusHistoryEntry) error
	// FindLast returns the most recent entry for a ticket, or (nil, nil) when
	// the ticket has no recorded transitions.
	FindLast(ctx context.Context, ticketID string) (*domain.StatusHistoryEntry, error)
	ListByTicket(ctx context.Context, ticketID string) ([]*domain.StatusHistoryEntry, error)
}

// SubscriberRepository tracks profiles watching a ticket regardless of assignment.
type SubscriberRepository interface {
	Add(ctx context.Context, ticketID, userID string) error
	Remove(ctx context.Context, ticketID, userID string) error
	ListUserIDs(ctx context.Context, ticketID string) ([]string, error)
}
