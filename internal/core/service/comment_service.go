package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/helpdesk/ticketing-system/internal/api/metrics"
	"github.com/helpdesk/ticketing-system/internal/core/domain"
	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

type commentService struct {
	comments ports.CommentRepository
	tickets  ports.TicketRepository
	profiles ports.ProfileRepository
	workflow ports.TicketService
	log      zerolog.Logger
}

// NewCommentService returns a CommentService implementation. workflow is used
// for the first-reply auto-transition so every status change shares one code
// path and always produces a history entry.
func NewCommentService(
	comments ports.CommentRepository,
	tickets ports.TicketRepository,
	profiles ports.ProfileRepository,
	workflow ports.TicketService,
	log zerolog.Logger,
) ports.CommentService {
	return &commentService{
		comments: comments,
		tickets:  tickets,
		profiles: profiles,
		workflow: workflow,
		log:      log,
	}
}

func (s *commentService) List(ctx context.Context, caller ports.Caller, ticketID string) ([]ports.CommentView, error) {
	ticket, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !ticket.CanBeViewedBy(caller.UserID, caller.Role) {
		return nil, domain.ErrAccessDenied
	}

	comments, err := s.comments.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	names := s.authorNames(ctx, comments)
	views := make([]ports.CommentView, len(comments))
	for i, c := range comments {
		views[i] = ports.CommentView{
			ID:         c.ID,
			TicketID:   c.TicketID,
			UserID:     c.UserID,
			AuthorName: names[c.UserID],
			Content:    c.Content,
			CreatedAt:  c.CreatedAt,
		}
	}
	return views, nil
}

// authorNames resolves author display names in one batched profile lookup.
func (s *commentService) authorNames(ctx context.Context, comments []*domain.Comment) map[string]string {
	seen := make(map[string]struct{}, len(comments))
	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.UserID]; !ok {
			seen[c.UserID] = struct{}{}
			ids = append(ids, c.UserID)
		}
	}

	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names
	}
	profiles, err := s.profiles.FindByIDs(ctx, ids)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to resolve comment author names")
		return names
	}
	for _, p := range profiles {
		names[p.ID] = p.DisplayName()
	}
	return names
}

func (s *commentService) Post(ctx context.Context, caller ports.Caller, ticketID, content string) (*ports.PostCommentResult, error) {
	if caller.UserID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrCommentEmpty
	}
	if utf8.RuneCountInString(content) > domain.MaxCommentLength {
		return nil, domain.ErrCommentTooLong
	}

	ticket, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !ticket.CanBeViewedBy(caller.UserID, caller.Role) {
		return nil, domain.ErrAccessDenied
	}

	// Sampled before the insert: the auto-transition fires only for the very
	// first reply on a ticket that is still "new".
	firstReply := false
	if ticket.Status == domain.StatusNew {
		count, err := s.comments.CountByTicket(ctx, ticketID)
		if err != nil {
			return nil, err
		}
		firstReply = count == 0
	}

	comment := &domain.Comment{
		ID:        uuid.NewString(),
		TicketID:  ticketID,
		UserID:    caller.UserID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.Insert(ctx, comment); err != nil {
		s.log.Error().Err(err).Str("ticket_id", ticketID).Msg("failed to insert comment")
		return nil, err
	}
	metrics.CommentsPostedTotal.Inc()

	result := &ports.PostCommentResult{CommentID: comment.ID}
	if firstReply {
		// Post-commit effect with independent failure handling: a failed
		// transition never undoes the already-saved comment.
		started, err := s.workflow.StartProgress(ctx, caller, ticketID)
		if err != nil {
			s.log.Warn().Err(err).Str("ticket_id", ticketID).Msg("auto transition after first reply failed")
		}
		result.StartedProgress = started
	}

	s.log.Info().
		Str("ticket_id", ticketID).
		Str("comment_id", comment.ID).
		Str("user_id", caller.UserID).
		Msg("comment posted")
	return result, nil
}

// Delete enforces the thread's single mutation rule centrally: only the most
// recent comment, only by its author or an admin, only while the ticket is
// not resolved.
func (s *commentService) Delete(ctx context.Context, caller ports.Caller, commentID string) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != caller.UserID && caller.Role != domain.RoleAdmin {
		return domain.ErrAccessDenied
	}

	ticket, err := s.tickets.FindByID(ctx, comment.TicketID)
	if err != nil {
		return err
	}
	if ticket.Status == domain.StatusResolved {
		return domain.ErrCommentLocked
	}

	thread, err := s.comments.ListByTicket(ctx, comment.TicketID)
	if err != nil {
		return err
	}
	if len(thread) == 0 || thread[0].ID != commentID {
		return domain.ErrCommentLocked
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}
	s.log.Info().Str("comment_id", commentID).Str("deleted_by", caller.UserID).Msg("comment deleted")
	return nil
}
