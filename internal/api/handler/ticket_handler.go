package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

// TicketHandler handles HTTP requests for ticket operations, including the
// status transition log.
type TicketHandler struct {
	service ports.TicketService
}

func NewTicketHandler(service ports.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

// Create handles POST /v1/tickets.
//
// @Summary      Open a new ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTicketRequest  true  "Ticket details"
// @Success      201   {object}  ticketResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/tickets [post]
func (h *TicketHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ticket, err := h.service.Create(c.Request().Context(), caller, ports.CreateTicketInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Priority:    req.Priority,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toTicketResponse(ticket))
}

// Get handles GET /v1/tickets/:id.
//
// @Summary      Get a ticket by id
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Ticket id"
// @Success      200  {object}  ticketResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/tickets/{id} [get]
func (h *TicketHandler) Get(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	ticket, err := h.service.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTicketResponse(ticket))
}

// List handles GET /v1/tickets.
//
// @Summary      List tickets with sorting and pagination
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        sort   query     string  false  "Sort field (default created_at)"
// @Param        order  query     string  false  "asc or desc (default desc)"
// @Param        page   query     int     false  "1-based page number"
// @Param        limit  query     int     false  "Page size (max 100)"
// @Success      200    {object}  listTicketsResponse
// @Failure      401    {object}  errorResponse
// @Router       /v1/tickets [get]
func (h *TicketHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var q listTicketsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	result, err := h.service.List(c.Request().Context(), caller, ports.ListTicketsInput{
		SortField: q.Sort,
		SortAsc:   strings.EqualFold(q.Order, "asc"),
		Page:      q.Page,
		Limit:     q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Update handles PATCH /v1/tickets/:id. It edits ticket fields, never status.
//
// @Summary      Edit ticket fields
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Ticket id"
// @Param        body  body      updateTicketRequest  true  "Fields to change"
// @Success      200   {object}  ticketResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/tickets/{id} [patch]
func (h *TicketHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ticket, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTicketResponse(ticket))
}

// StartProgress handles POST /v1/tickets/:id/start.
//
// @Summary      Move a new or resolved ticket to in_progress
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Ticket id"
// @Success      200  {object}  startProgressResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/tickets/{id}/start [post]
func (h *TicketHandler) StartProgress(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	started, err := h.service.StartProgress(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}

	status := "unchanged"
	if started {
		status = "in_progress"
	}
	return c.JSON(http.StatusOK, startProgressResponse{Started: started, Status: status})
}

// Close handles POST /v1/tickets/:id/close.
//
// @Summary      Resolve a ticket regardless of its current status
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Ticket id"
// @Success      204  "ticket resolved"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/tickets/{id}/close [post]
func (h *TicketHandler) Close(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Close(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// History handles GET /v1/tickets/:id/history.
//
// @Summary      Full status transition log for a ticket, newest first
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Ticket id"
// @Success      200  {array}   statusChangeResponse
// @Router       /v1/tickets/{id}/history [get]
func (h *TicketHandler) History(c echo.Context) error {
	if _, err := ctxCaller(c); err != nil {
		return err
	}

	views, err := h.service.StatusHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	out := make([]statusChangeResponse, len(views))
	for i, v := range views {
		out[i] = toStatusChangeResponse(v)
	}
	return c.JSON(http.StatusOK, out)
}

// LastHistory handles GET /v1/tickets/:id/history/last, the entry behind
// "resolved by X at time T". Returns 204 when the ticket never changed status.
//
// @Summary      Most recent status change for a ticket
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Ticket id"
// @Success      200  {object}  statusChangeResponse
// @Success      204  "no status changes recorded"
// @Router       /v1/tickets/{id}/history/last [get]
func (h *TicketHandler) LastHistory(c echo.Context) error {
	if _, err := ctxCaller(c); err != nil {
		return err
	}

	view, err := h.service.LastStatusChange(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if view == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, toStatusChangeResponse(*view))
}

// Subscribe handles POST /v1/tickets/:id/subscribe.
//
// @Summary      Watch a ticket for administrator replies
// @Tags         tickets
// @Security     BearerAuth
// @Param        id  path  string  true  "Ticket id"
// @Success      204  "subscribed"
// @Router       /v1/tickets/{id}/subscribe [post]
func (h *TicketHandler) Subscribe(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	if err := h.service.Subscribe(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Unsubscribe handles DELETE /v1/tickets/:id/subscribe.
//
// @Summary      Stop watching a ticket
// @Tags         tickets
// @Security     BearerAuth
// @Param        id  path  string  true  "Ticket id"
// @Success      204  "unsubscribed"
// @Router       /v1/tickets/{id}/subscribe [delete]
func (h *TicketHandler) Unsubscribe(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	if err := h.service.Unsubscribe(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
