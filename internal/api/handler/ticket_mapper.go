package handler

import (
	"github.com/helpdesk/ticketing-system/internal/core/domain"
	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

func toTicketResponse(t *domain.Ticket) ticketResponse {
	return ticketResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Type:        string(t.Type),
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		CreatedBy:   t.CreatedBy,
		AssignedTo:  t.AssignedTo,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
}

func toListResponse(r *ports.ListTicketsResult) listTicketsResponse {
	items := make([]ticketResponse, len(r.Items))
	for i, t := range r.Items {
		items[i] = toTicketResponse(t)
	}
	return listTicketsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func toStatusChangeResponse(v ports.StatusChangeView) statusChangeResponse {
	return statusChangeResponse{
		TicketID:      v.TicketID,
		OldStatus:     string(v.OldStatus),
		NewStatus:     string(v.NewStatus),
		ChangedBy:     v.ChangedBy,
		ChangedByName: v.ChangedByName,
		CreatedAt:     v.CreatedAt.UTC(),
	}
}

func toCommentResponse(v ports.CommentView) commentResponse {
	return commentResponse{
		ID:         v.ID,
		TicketID:   v.TicketID,
		UserID:     v.UserID,
		AuthorName: v.AuthorName,
		Content:    v.Content,
		CreatedAt:  v.CreatedAt.UTC(),
	}
}

func toUpdateInput(req updateTicketRequest) ports.UpdateTicketInput {
	return ports.UpdateTicketInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Priority:    req.Priority,
		AssignedTo:  req.AssignedTo,
	}
}
