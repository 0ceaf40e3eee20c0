package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/helpdesk/ticketing-system/internal/api/metrics"
	"github.com/helpdesk/ticketing-system/internal/core/domain"
	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// sortableFields is the whitelist of ticket columns accepted as sort keys.
var sortableFields = map[string]string{
	"created_at":  "created_at",
	"updated_at":  "updated_at",
	"title":       "title",
	"status":      "status",
	"priority":    "priority",
	"type":        "type",
	"created_by":  "created_by",
	"assigned_to": "assigned_to",
}

type ticketService struct {
	tickets     ports.TicketRepository
	history     ports.HistoryRepository
	profiles    ports.ProfileRepository
	subscribers ports.SubscriberRepository
	log         zerolog.Logger
}

// NewTicketService returns a TicketService implementation.
func NewTicketService(
	tickets ports.TicketRepository,
	history ports.HistoryRepository,
	profiles ports.ProfileRepository,
	subscribers ports.SubscriberRepository,
	log zerolog.Logger,
) ports.TicketService {
	return &ticketService{
		tickets:     tickets,
		history:     history,
		profiles:    profiles,
		subscribers: subscribers,
		log:         log,
	}
}

func (s *ticketService) Create(ctx context.Context, caller ports.Caller, in ports.CreateTicketInput) (*domain.Ticket, error) {
	if caller.UserID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	now := time.Now().UTC()
	ticket := &domain.Ticket{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Type:        domain.TicketType(in.Type),
		Status:      domain.StatusNew,
		Priority:    domain.TicketPriority(in.Priority),
		CreatedBy:   caller.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.PriorityMedium
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		s.log.Error().Err(err).Msg("failed to create ticket")
		return nil, err
	}

	metrics.TicketsCreatedTotal.WithLabelValues(string(ticket.Type)).Inc()
	s.log.Info().Str("ticket_id", ticket.ID).Str("created_by", caller.UserID).Msg("ticket created")
	return ticket, nil
}

func (s *ticketService) Get(ctx context.Context, caller ports.Caller, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ticket.CanBeViewedBy(caller.UserID, caller.Role) {
		return nil, domain.ErrAccessDenied
	}
	return ticket, nil
}

func (s *ticketService) List(ctx context.Context, caller ports.Caller, in ports.ListTicketsInput) (*ports.ListTicketsResult, error) {
	if caller.UserID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	sortField, ok := sortableFields[in.SortField]
	if !ok {
		sortField = "created_at"
	}

	filter := ports.ListTicketsFilter{
		SortField: sortField,
		SortAsc:   in.SortAsc,
		Page:      page,
		Limit:     limit,
	}
	if !caller.IsStaff() {
		filter.ViewerID = caller.UserID
	}

	items, total, err := s.tickets.List(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list tickets")
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListTicketsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *ticketService) Update(ctx context.Context, caller ports.Caller, id string, in ports.UpdateTicketInput) (*domain.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsStaff() && ticket.CreatedBy != caller.UserID {
		return nil, domain.ErrAccessDenied
	}

	if in.Title != nil {
		ticket.Title = *in.Title
	}
	if in.Description != nil {
		ticket.Description = *in.Description
	}
	if in.Type != nil {
		ticket.Type = domain.TicketType(*in.Type)
	}
	if in.Priority != nil {
		ticket.Priority = domain.TicketPriority(*in.Priority)
	}
	if in.AssignedTo != nil {
		ticket.AssignedTo = *in.AssignedTo
	}
	ticket.UpdatedAt = time.Now().UTC()

	if err := s.tickets.Update(ctx, ticket); err != nil {
		s.log.Error().Err(err).Str("ticket_id", id).Msg("failed to update ticket")
		return nil, err
	}
	return ticket, nil
}

// StartProgress moves a new or resolved ticket to in_progress. Any other
// current status is a silent no-op: no update, no history entry.
func (s *ticketService) StartProgress(ctx context.Context, caller ports.Caller, id string) (bool, error) {
	ticket, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !ticket.CanBeViewedBy(caller.UserID, caller.Role) {
		return false, domain.ErrAccessDenied
	}

	if !ticket.Status.CanTransitionTo(domain.StatusInProgress) {
		s.log.Debug().Str("ticket_id", id).Str("status", string(ticket.Status)).Msg("start progress skipped")
		return false, nil
	}

	return true, s.transition(ctx, ticket, domain.StatusInProgress, caller.UserID)
}

// Close moves the ticket to resolved regardless of its current status.
func (s *ticketService) Close(ctx context.Context, caller ports.Caller, id string) error {
	ticket, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !ticket.CanBeViewedBy(caller.UserID, caller.Role) {
		return domain.ErrAccessDenied
	}

	return s.transition(ctx, ticket, domain.StatusResolved, caller.UserID)
}

// transition applies the status update and appends the history entry. The two
// writes are not transactional: a failed history insert leaves the status
// changed and the audit trail incomplete, and the error surfaces to the caller.
func (s *ticketService) transition(ctx context.Context, ticket *domain.Ticket, next domain.TicketStatus, actorID string) error {
	old := ticket.Status

	if err := s.tickets.UpdateStatus(ctx, ticket.ID, next); err != nil {
		s.log.Error().Err(err).Str("ticket_id", ticket.ID).Msg("failed to update ticket status")
		return err
	}

	entry := &domain.StatusHistoryEntry{
		ID:        uuid.NewString(),
		TicketID:  ticket.ID,
		OldStatus: old,
		NewStatus: next,
		ChangedBy: actorID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.history.Insert(ctx, entry); err != nil {
		s.log.Error().Err(err).Str("ticket_id", ticket.ID).Msg("status updated but history insert failed")
		return fmt.Errorf("record status history: %w", err)
	}

	metrics.StatusTransitionsTotal.WithLabelValues(string(old), string(next)).Inc()
	s.log.Info().
		Str("ticket_id", ticket.ID).
		Str("old_status", string(old)).
		Str("new_status", string(next)).
		Str("changed_by", actorID).
		Msg("ticket status changed")
	return nil
}

func (s *ticketService) LastStatusChange(ctx context.Context, ticketID string) (*ports.StatusChangeView, error) {
	entry, err := s.history.FindLast(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	view := s.toView(ctx, entry)
	return &view, nil
}

func (s *ticketService) StatusHistory(ctx context.Context, ticketID string) ([]ports.StatusChangeView, error) {
	entries, err := s.history.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.StatusChangeView, len(entries))
	for i, e := range entries {
		views[i] = s.toView(ctx, e)
	}
	return views, nil
}

// toView decorates a history entry with the actor's display name. A missing
// profile is a handled state: the name is simply left empty.
func (s *ticketService) toView(ctx context.Context, e *domain.StatusHistoryEntry) ports.StatusChangeView {
	view := ports.StatusChangeView{
		TicketID:  e.TicketID,
		OldStatus: e.OldStatus,
		NewStatus: e.NewStatus,
		ChangedBy: e.ChangedBy,
		CreatedAt: e.CreatedAt,
	}
	if profile, err := s.profiles.FindByID(ctx, e.ChangedBy); err == nil {
		view.ChangedByName = profile.DisplayName()
	}
	return view
}

func (s *ticketService) Subscribe(ctx context.Context, caller ports.Caller, ticketID string) error {
	if _, err := s.Get(ctx, caller, ticketID); err != nil {
		return err
	}
	return s.subscribers.Add(ctx, ticketID, caller.UserID)
}

func (s *ticketService) Unsubscribe(ctx context.Context, caller ports.Caller, ticketID string) error {
	if _, err := s.Get(ctx, caller, ticketID); err != nil {
		return err
	}
	return s.subscribers.Remove(ctx, ticketID, caller.UserID)
}
