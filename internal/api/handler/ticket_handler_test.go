package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

type stubTicketService struct {
	createFn        func(ctx context.Context, caller ports.Caller, in ports.CreateTicketInput) (*domain.Ticket, error)
	getFn           func(ctx context.Context, caller ports.Caller, id string) (*domain.Ticket, error)
	listFn          func(ctx context.Context, caller ports.Caller, in ports.ListTicketsInput) (*ports.ListTicketsResult, error)
	updateFn        func(ctx context.Context, caller ports.Caller, id string, in ports.UpdateTicketInput) (*domain.Ticket, error)
	startFn         func(ctx context.Context, caller ports.Caller, id string) (bool, error)
	closeFn         func(ctx context.Context, caller ports.Caller, id string) error
	lastChangeFn    func(ctx context.Context, ticketID string) (*ports.StatusChangeView, error)
	historyFn       func(ctx context.Context, ticketID string) ([]ports.StatusChangeView, error)
	subscribeFn     func(ctx context.Context, caller ports.Caller, ticketID string) error
	unsubscribeFn   func(ctx context.Context, caller ports.Caller, ticketID string) error
}

func (s *stubTicketService) Create(ctx context.Context, caller ports.Caller, in ports.CreateTicketInput) (*domain.Ticket, error) {
	return s.createFn(ctx, caller, in)
}
func (s *stubTicketService) Get(ctx context.Context, caller ports.Caller, id string) (*domain.Ticket, error) {
	return s.getFn(ctx, caller, id)
}
func (s *stubTicketService) List(ctx context.Context, caller ports.Caller, in ports.ListTicketsInput) (*ports.ListTicketsResult, error) {
	return s.listFn(ctx, caller, in)
}
func (s *stubTicketService) Update(ctx context.Context, caller ports.Caller, id string, in ports.UpdateTicketInput) (*domain.Ticket, error) {
	return s.updateFn(ctx, caller, id, in)
}
func (s *stubTicketService) StartProgress(ctx context.Context, caller ports.Caller, id string) (bool, error) {
	return s.startFn(ctx, caller, id)
}
func (s *stubTicketService) Close(ctx context.Context, caller ports.Caller, id string) error {
	return s.closeFn(ctx, caller, id)
}
func (s *stubTicketService) LastStatusChange(ctx context.Context, ticketID string) (*ports.StatusChangeView, error) {
	return s.lastChangeFn(ctx, ticketID)
}
func (s *stubTicketService) StatusHistory(ctx context.Context, ticketID string) ([]ports.StatusChangeView, error) {
	return s.historyFn(ctx, ticketID)
}
func (s *stubTicketService) Subscribe(ctx context.Context, caller ports.Caller, ticketID string) error {
	return s.subscribeFn(ctx, caller, ticketID)
}
func (s *stubTicketService) Unsubscribe(ctx context.Context, caller ports.Caller, ticketID string) error {
	return s.unsubscribeFn(ctx, caller, ticketID)
}

// authedContext builds an echo context carrying the claims the Auth middleware
// would have injected.
func authedContext(t *testing.T, method, target, body, userID, role string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("role", role)
	return c, rec
}

func TestTicketHandler_Create(t *testing.T) {
	stub := &stubTicketService{
		createFn: func(_ context.Context, caller ports.Caller, in ports.CreateTicketInput) (*domain.Ticket, error) {
			if caller.UserID != "client-1" {
				t.Fatalf("caller = %+v", caller)
			}
			if in.Title != "vpn down" || in.Type != "problem" {
				t.Fatalf("input = %+v", in)
			}
			return &domain.Ticket{
				ID: "t1", Title: in.Title, Type: domain.TicketType(in.Type),
				Status: domain.StatusNew, Priority: domain.PriorityMedium,
				CreatedBy: caller.UserID, CreatedAt: time.Now(), UpdatedAt: time.Now(),
			}, nil
		},
	}
	h := NewTicketHandler(stub)

	c, rec := authedContext(t, http.MethodPost, "/v1/tickets",
		`{"title":"vpn down","description":"since 9am","type":"problem"}`, "client-1", "client")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "t1" || resp["status"] != "new" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestTicketHandler_Create_RejectsBadType(t *testing.T) {
	h := NewTicketHandler(&stubTicketService{})

	c, _ := authedContext(t, http.MethodPost, "/v1/tickets",
		`{"title":"x","description":"y","type":"complaint"}`, "client-1", "client")

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400", err)
	}
}

func TestTicketHandler_Create_MissingClaims(t *testing.T) {
	h := NewTicketHandler(&stubTicketService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/tickets", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
}

func TestTicketHandler_Get_PropagatesAccessDenied(t *testing.T) {
	stub := &stubTicketService{
		getFn: func(context.Context, ports.Caller, string) (*domain.Ticket, error) {
			return nil, domain.ErrAccessDenied
		},
	}
	h := NewTicketHandler(stub)

	c, _ := authedContext(t, http.MethodGet, "/v1/tickets/t1", "", "client-2", "client")
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := h.Get(c); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("err = %v, want ErrAccessDenied passed to the error handler", err)
	}
}

func TestTicketHandler_StartProgress_ReportsNoOp(t *testing.T) {
	stub := &stubTicketService{
		startFn: func(context.Context, ports.Caller, string) (bool, error) {
			return false, nil
		},
	}
	h := NewTicketHandler(stub)

	c, rec := authedContext(t, http.MethodPost, "/v1/tickets/t1/start", "", "tech-1", "technician")
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := h.StartProgress(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp startProgressResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Started || resp.Status != "unchanged" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestTicketHandler_LastHistory_NoContentWhenUnchanged(t *testing.T) {
	stub := &stubTicketService{
		lastChangeFn: func(context.Context, string) (*ports.StatusChangeView, error) {
			return nil, nil
		},
	}
	h := NewTicketHandler(stub)

	c, rec := authedContext(t, http.MethodGet, "/v1/tickets/t1/history/last", "", "client-1", "client")
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := h.LastHistory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestTicketHandler_List_PassesSortOrder(t *testing.T) {
	stub := &stubTicketService{
		listFn: func(_ context.Context, _ ports.Caller, in ports.ListTicketsInput) (*ports.ListTicketsResult, error) {
			if in.SortField != "priority" || !in.SortAsc || in.Page != 2 {
				t.Fatalf("input = %+v", in)
			}
			return &ports.ListTicketsResult{Items: nil, Page: 2, Limit: 10}, nil
		},
	}
	h := NewTicketHandler(stub)

	c, rec := authedContext(t, http.MethodGet, "/v1/tickets?sort=priority&order=asc&page=2", "", "tech-1", "technician")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
