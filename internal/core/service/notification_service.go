package service

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/rs/zerolog"

	"github.com/helpdesk/ticketing-system/internal/api/metrics"
	"github.com/helpdesk/ticketing-system/internal/core/domain"
	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

// DeliveryDedup abstracts the idempotency store (Redis). Delivery is keyed by
// comment id so a redelivered job cannot double-send.
type DeliveryDedup interface {
	IsDelivered(ctx context.Context, commentID string) (bool, error)
	MarkDelivered(ctx context.Context, commentID string) error
}

type notificationService struct {
	tickets     ports.TicketRepository
	profiles    ports.ProfileRepository
	subscribers ports.SubscriberRepository
	mailer      ports.Mailer
	dedup       DeliveryDedup
	frontendURL string
	testEmail   string
	log         zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation.
// frontendURL is used to build the ticket link embedded in every email;
// testEmail is the hard-coded recipient of the diagnostic message.
func NewNotificationService(
	tickets ports.TicketRepository,
	profiles ports.ProfileRepository,
	subscribers ports.SubscriberRepository,
	mailer ports.Mailer,
	dedup DeliveryDedup,
	frontendURL string,
	testEmail string,
	log zerolog.Logger,
) ports.NotificationService {
	return &notificationService{
		tickets:     tickets,
		profiles:    profiles,
		subscribers: subscribers,
		mailer:      mailer,
		dedup:       dedup,
		frontendURL: frontendURL,
		testEmail:   testEmail,
		log:         log,
	}
}

// Deliver resolves the recipient set for a new comment and sends one email
// per recipient group:
//
//  1. assignee set → the assignee alone;
//  2. otherwise → every admin;
//  3. additionally, when the actor is an admin → every subscriber of the
//     ticket, under an "administrator reply" subject.
func (s *notificationService) Deliver(ctx context.Context, job ports.NotificationJob) error {
	if dup, err := s.dedup.IsDelivered(ctx, job.CommentID); err != nil {
		s.log.Warn().Err(err).Str("comment_id", job.CommentID).Msg("dedup check failed, delivering anyway")
	} else if dup {
		s.log.Debug().Str("comment_id", job.CommentID).Msg("duplicate notification skipped")
		return nil
	}

	ticket, err := s.tickets.FindByID(ctx, job.TicketID)
	if err != nil {
		return fmt.Errorf("notify: %w", err)
	}

	subject := fmt.Sprintf("New comment on ticket #%s", ticket.ID)
	body := s.commentBody(ticket.ID, job.Content)

	if ticket.AssignedTo != "" {
		assignee, err := s.profiles.FindByID(ctx, ticket.AssignedTo)
		if err != nil {
			return fmt.Errorf("notify: resolve assignee: %w", err)
		}
		if err := s.send(ctx, "assignee", []string{assignee.Email}, subject, body); err != nil {
			return err
		}
	} else {
		admins, err := s.profiles.FindByRole(ctx, domain.RoleAdmin)
		if err != nil {
			return fmt.Errorf("notify: resolve admins: %w", err)
		}
		if err := s.send(ctx, "admins", emails(admins), subject, body); err != nil {
			return err
		}
	}

	actor, err := s.profiles.FindByID(ctx, job.ActorID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", job.ActorID).Msg("could not resolve acting user, skipping subscriber broadcast")
	} else if actor.Role == domain.RoleAdmin {
		userIDs, err := s.subscribers.ListUserIDs(ctx, job.TicketID)
		if err != nil {
			return fmt.Errorf("notify: list subscribers: %w", err)
		}
		subs, err := s.profiles.FindByIDs(ctx, userIDs)
		if err != nil {
			return fmt.Errorf("notify: resolve subscribers: %w", err)
		}
		adminSubject := fmt.Sprintf("Administrator reply - Ticket #%s", ticket.ID)
		if err := s.send(ctx, "subscribers", emails(subs), adminSubject, body); err != nil {
			return err
		}
	}

	if err := s.dedup.MarkDelivered(ctx, job.CommentID); err != nil {
		s.log.Warn().Err(err).Str("comment_id", job.CommentID).Msg("failed to mark notification delivered")
	}
	return nil
}

// send dispatches one email to a recipient group. Empty groups are skipped.
func (s *notificationService) send(ctx context.Context, group string, to []string, subject, body string) error {
	if len(to) == 0 {
		s.log.Debug().Str("group", group).Msg("no recipients, skipping")
		return nil
	}
	if err := s.mailer.Send(ctx, to, subject, body); err != nil {
		metrics.NotificationErrorsTotal.WithLabelValues(group).Inc()
		s.log.Error().Err(err).Str("group", group).Int("recipients", len(to)).Msg("mail delivery failed")
		return fmt.Errorf("%w: %s: %v", domain.ErrMailDelivery, group, err)
	}
	metrics.NotificationsSentTotal.WithLabelValues(group).Inc()
	s.log.Info().Str("group", group).Int("recipients", len(to)).Str("subject", subject).Msg("notification sent")
	return nil
}

// SendTest fires the hard-coded diagnostic email.
func (s *notificationService) SendTest(ctx context.Context) error {
	body := fmt.Sprintf("<strong>This is a test email.</strong> %s", time.Now().UTC().Format(time.RFC1123))
	return s.send(ctx, "test", []string{s.testEmail}, "Ticketing system test email", body)
}

func (s *notificationService) commentBody(ticketID, content string) string {
	return fmt.Sprintf(
		`<h2>New comment on the ticket</h2><p>%s</p><p>To view the ticket, <a href="%s/tickets/%s">click here</a></p>`,
		html.EscapeString(content), s.frontendURL, ticketID,
	)
}

func emails(profiles []*domain.Profile) []string {
	out := make([]string, 0, len(profiles))
	for _, p := range profiles {
		if p.Email != "" {
			out = append(out, p.Email)
		}
	}
	return out
}
