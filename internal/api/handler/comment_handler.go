package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

// CommentHandler exposes ticket reply threads. After a comment is persisted it
// hands the notification job to the enqueuer; delivery happens off the request
// path and its outcome never affects the response.
type CommentHandler struct {
	service  ports.CommentService
	enqueuer ports.NotificationEnqueuer
}

func NewCommentHandler(service ports.CommentService, enqueuer ports.NotificationEnqueuer) *CommentHandler {
	return &CommentHandler{service: service, enqueuer: enqueuer}
}

// List handles GET /v1/tickets/:id/comments.
//
// @Summary      List a ticket's comments, newest first
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Ticket id"
// @Success      200  {array}   commentResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/tickets/{id}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	views, err := h.service.List(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}

	out := make([]commentResponse, len(views))
	for i, v := range views {
		out[i] = toCommentResponse(v)
	}
	return c.JSON(http.StatusOK, out)
}

// Post handles POST /v1/tickets/:id/comments.
//
// @Summary      Reply to a ticket
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Ticket id"
// @Param        body  body      postCommentRequest  true  "Comment content"
// @Success      201   {object}  postCommentResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/tickets/{id}/comments [post]
func (h *CommentHandler) Post(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req postCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ticketID := c.Param("id")
	result, err := h.service.Post(c.Request().Context(), caller, ticketID, req.Content)
	if err != nil {
		return err
	}

	h.enqueuer.Enqueue(ports.NotificationJob{
		TicketID:  ticketID,
		CommentID: result.CommentID,
		Content:   req.Content,
		ActorID:   caller.UserID,
	})

	return c.JSON(http.StatusCreated, postCommentResponse{
		ID:              result.CommentID,
		StartedProgress: result.StartedProgress,
	})
}

// Delete handles DELETE /v1/comments/:id.
//
// @Summary      Delete the latest comment on an unresolved ticket
// @Tags         comments
// @Security     BearerAuth
// @Param        id  path  string  true  "Comment id"
// @Success      204  "comment deleted"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
