package service

import (
	"context"
	"sort"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared across the service tests
// ---------------------------------------------------------------------------

type stubTicketRepo struct {
	byID            map[string]*domain.Ticket
	createErr       error
	updateStatusErr error
	lastListFilter  ports.ListTicketsFilter
}

func newStubTicketRepo() *stubTicketRepo {
	return &stubTicketRepo{byID: make(map[string]*domain.Ticket)}
}

func (r *stubTicketRepo) Create(_ context.Context, t *domain.Ticket) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *t
	r.byID[t.ID] = &clone
	return nil
}

func (r *stubTicketRepo) FindByID(_ context.Context, id string) (*domain.Ticket, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	clone := *t
	return &clone, nil
}

// List applies the same viewer filter the real Mongo repo would use.
func (r *stubTicketRepo) List(_ context.Context, f ports.ListTicketsFilter) ([]*domain.Ticket, int64, error) {
	r.lastListFilter = f

	var matched []*domain.Ticket
	for _, t := range r.byID {
		if f.ViewerID != "" && t.CreatedBy != f.ViewerID && t.AssignedTo != f.ViewerID {
			continue
		}
		clone := *t
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool {
		if f.SortAsc {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	skip := (f.Page - 1) * f.Limit
	if skip > len(matched) {
		return []*domain.Ticket{}, total, nil
	}
	end := skip + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *stubTicketRepo) Update(_ context.Context, t *domain.Ticket) error {
	if _, ok := r.byID[t.ID]; !ok {
		return domain.ErrTicketNotFound
	}
	clone := *t
	r.byID[t.ID] = &clone
	return nil
}

func (r *stubTicketRepo) UpdateStatus(_ context.Context, id string, status domain.TicketStatus) error {
	if r.updateStatusErr != nil {
		return r.updateStatusErr
	}
	t, ok := r.byID[id]
	if !ok {
		return domain.ErrTicketNotFound
	}
	t.Status = status
	return nil
}

type stubHistoryRepo struct {
	entries   []*domain.StatusHistoryEntry
	insertErr error
}

func (r *stubHistoryRepo) Insert(_ context.Context, e *domain.StatusHistoryEntry) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *e
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *stubHistoryRepo) FindLast(_ context.Context, ticketID string) (*domain.StatusHistoryEntry, error) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].TicketID == ticketID {
			clone := *r.entries[i]
			return &clone, nil
		}
	}
	return nil, nil
}

// ListByTicket returns entries newest-first, mirroring the Mongo sort.
func (r *stubHistoryRepo) ListByTicket(_ context.Context, ticketID string) ([]*domain.StatusHistoryEntry, error) {
	var out []*domain.StatusHistoryEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].TicketID == ticketID {
			clone := *r.entries[i]
			out = append(out, &clone)
		}
	}
	return out, nil
}

type stubCommentRepo struct {
	// byTicket keeps threads newest-first, like the real repository.
	byTicket  map[string][]*domain.Comment
	insertErr error
	deleted   []string
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{byTicket: make(map[string][]*domain.Comment)}
}

func (r *stubCommentRepo) Insert(_ context.Context, c *domain.Comment) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *c
	r.byTicket[c.TicketID] = append([]*domain.Comment{&clone}, r.byTicket[c.TicketID]...)
	return nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	for _, thread := range r.byTicket {
		for _, c := range thread {
			if c.ID == id {
				clone := *c
				return &clone, nil
			}
		}
	}
	return nil, domain.ErrCommentNotFound
}

func (r *stubCommentRepo) ListByTicket(_ context.Context, ticketID string) ([]*domain.Comment, error) {
	thread := r.byTicket[ticketID]
	out := make([]*domain.Comment, len(thread))
	for i, c := range thread {
		clone := *c
		out[i] = &clone
	}
	return out, nil
}

func (r *stubCommentRepo) CountByTicket(_ context.Context, ticketID string) (int64, error) {
	return int64(len(r.byTicket[ticketID])), nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	for ticketID, thread := range r.byTicket {
		for i, c := range thread {
			if c.ID == id {
				r.byTicket[ticketID] = append(thread[:i], thread[i+1:]...)
				r.deleted = append(r.deleted, id)
				return nil
			}
		}
	}
	return domain.ErrCommentNotFound
}

type stubProfileRepo struct {
	byID      map[string]*domain.Profile
	createErr error
}

func newStubProfileRepo(profiles ...*domain.Profile) *stubProfileRepo {
	r := &stubProfileRepo{byID: make(map[string]*domain.Profile)}
	for _, p := range profiles {
		clone := *p
		r.byID[p.ID] = &clone
	}
	return r
}

func (r *stubProfileRepo) Create(_ context.Context, p *domain.Profile) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProfileRepo) FindByID(_ context.Context, id string) (*domain.Profile, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProfileRepo) FindByEmail(_ context.Context, email string) (*domain.Profile, error) {
	for _, p := range r.byID {
		if p.Email == email {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *stubProfileRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Profile, error) {
	var out []*domain.Profile
	for _, id := range ids {
		if p, ok := r.byID[id]; ok {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubProfileRepo) FindByRole(_ context.Context, role string) ([]*domain.Profile, error) {
	ids := make([]string, 0, len(r.byID))
	for id, p := range r.byID {
		if p.Role == role {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	out := make([]*domain.Profile, len(ids))
	for i, id := range ids {
		clone := *r.byID[id]
		out[i] = &clone
	}
	return out, nil
}

func (r *stubProfileRepo) List(_ context.Context) ([]*domain.Profile, error) {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*domain.Profile, len(ids))
	for i, id := range ids {
		clone := *r.byID[id]
		out[i] = &clone
	}
	return out, nil
}

func (r *stubProfileRepo) Update(_ context.Context, p *domain.Profile) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrProfileNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProfileRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProfileNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubSubscriberRepo struct {
	byTicket map[string][]string
}

func newStubSubscriberRepo() *stubSubscriberRepo {
	return &stubSubscriberRepo{byTicket: make(map[string][]string)}
}

func (r *stubSubscriberRepo) Add(_ context.Context, ticketID, userID string) error {
	for _, id := range r.byTicket[ticketID] {
		if id == userID {
			return nil
		}
	}
	r.byTicket[ticketID] = append(r.byTicket[ticketID], userID)
	return nil
}

func (r *stubSubscriberRepo) Remove(_ context.Context, ticketID, userID string) error {
	subs := r.byTicket[ticketID]
	for i, id := range subs {
		if id == userID {
			r.byTicket[ticketID] = append(subs[:i], subs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubSubscriberRepo) ListUserIDs(_ context.Context, ticketID string) ([]string, error) {
	return append([]string(nil), r.byTicket[ticketID]...), nil
}

// ---------------------------------------------------------------------------
// Mail and dedup stubs
// ---------------------------------------------------------------------------

type sentMail struct {
	to      []string
	subject string
	body    string
}

type stubMailer struct {
	sent    []sentMail
	sendErr error
}

func (m *stubMailer) Send(_ context.Context, to []string, subject, htmlBody string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

type stubDedup struct {
	delivered map[string]bool
	checkErr  error
}

func newStubDedup() *stubDedup {
	return &stubDedup{delivered: make(map[string]bool)}
}

func (d *stubDedup) IsDelivered(_ context.Context, commentID string) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.delivered[commentID], nil
}

func (d *stubDedup) MarkDelivered(_ context.Context, commentID string) error {
	d.delivered[commentID] = true
	return nil
}
