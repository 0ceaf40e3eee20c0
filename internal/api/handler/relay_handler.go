package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

// RelayHandler preserves the legacy relay contract under /api. Unlike the v1
// comment route, delivery here happens synchronously so the caller learns
// about mail failures in the response.
type RelayHandler struct {
	comments      ports.CommentService
	notifications ports.NotificationService
	profiles      ports.ProfileService
	log           zerolog.Logger
}

func NewRelayHandler(comments ports.CommentService, notifications ports.NotificationService, profiles ports.ProfileService, log zerolog.Logger) *RelayHandler {
	return &RelayHandler{comments: comments, notifications: notifications, profiles: profiles, log: log}
}

type relayRequest struct {
	TicketID     string `json:"ticketId"`
	ReplyContent string `json:"replyContent"`
	UserID       string `json:"userId"`
}

type relaySuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type relayErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// PostCommentReplyAndNotify handles POST /api/post-comment-reply-and-notify:
// save the reply, then email the interested parties before responding.
//
// @Summary      Save a reply and notify interested parties
// @Tags         relay
// @Accept       json
// @Produce      json
// @Param        body  body      relayRequest  true  "Reply details"
// @Success      200   {object}  relaySuccessResponse
// @Failure      400   {object}  relayErrorResponse
// @Failure      500   {object}  relayErrorResponse
// @Router       /api/post-comment-reply-and-notify [post]
func (h *RelayHandler) PostCommentReplyAndNotify(c echo.Context) error {
	var req relayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, relayErrorResponse{Error: "invalid payload"})
	}
	if req.TicketID == "" || req.ReplyContent == "" || req.UserID == "" {
		return c.JSON(http.StatusBadRequest, relayErrorResponse{
			Error: "ticketId, replyContent and userId are required",
		})
	}

	ctx := c.Request().Context()

	// The relay trusts userId; the route is not JWT-gated. The profile lookup
	// both validates the id and supplies the role for authorization.
	actor, err := h.profiles.Get(ctx, req.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, relayErrorResponse{
			Error:   "failed to post comment",
			Details: err.Error(),
		})
	}
	caller := ports.Caller{UserID: actor.ID, Role: actor.Role}

	result, err := h.comments.Post(ctx, caller, req.TicketID, req.ReplyContent)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, relayErrorResponse{
			Error:   "failed to post comment",
			Details: err.Error(),
		})
	}

	if err := h.notifications.Deliver(ctx, ports.NotificationJob{
		TicketID:  req.TicketID,
		CommentID: result.CommentID,
		Content:   req.ReplyContent,
		ActorID:   actor.ID,
	}); err != nil {
		h.log.Error().Err(err).
			Str("ticket_id", req.TicketID).
			Str("comment_id", result.CommentID).
			Msg("relay: notification delivery failed, comment kept")
		return c.JSON(http.StatusInternalServerError, relayErrorResponse{
			Error:   "comment saved but notification failed",
			Details: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, relaySuccessResponse{
		Success: true,
		Message: "comment posted and notifications sent",
		Data:    map[string]any{"comment_id": result.CommentID},
	})
}

// SendTestEmail handles POST /api/send-email: a diagnostic mail to the
// configured test address.
//
// @Summary      Send a diagnostic email
// @Tags         relay
// @Produce      json
// @Success      200  {object}  relaySuccessResponse
// @Failure      500  {object}  relayErrorResponse
// @Router       /api/send-email [post]
func (h *RelayHandler) SendTestEmail(c echo.Context) error {
	if err := h.notifications.SendTest(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, relayErrorResponse{
			Error:   "failed to send email",
			Details: err.Error(),
		})
	}
	return c.JSON(http.StatusOK, relaySuccessResponse{Success: true, Message: "email sent"})
}
