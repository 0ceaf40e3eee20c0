package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createTicketRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Type        string `json:"type"        validate:"required,oneof=problem task service_request"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
}

// updateTicketRequest is a partial edit: absent fields stay untouched.
// Status is deliberately not editable here; it changes only through the
// start/close operations.
type updateTicketRequest struct {
	Title       *string `json:"title,omitempty"       validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty"        validate:"omitempty,oneof=problem task service_request"`
	Priority    *string `json:"priority,omitempty"    validate:"omitempty,oneof=low medium high urgent"`
	AssignedTo  *string `json:"assigned_to,omitempty"`
}

type listTicketsQuery struct {
	Sort  string `query:"sort"`
	Order string `query:"order"` // asc|desc, default desc
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
}

// --- Response types ---
// These are intentionally separate from ports/domain types so the JSON
// contract is not coupled to internal service changes.

type ticketResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedBy   string    `json:"created_by"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listTicketsResponse struct {
	Data       []ticketResponse   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type statusChangeResponse struct {
	TicketID      string    `json:"ticket_id"`
	OldStatus     string    `json:"old_status"`
	NewStatus     string    `json:"new_status"`
	ChangedBy     string    `json:"changed_by"`
	ChangedByName string    `json:"changed_by_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type startProgressResponse struct {
	Started bool   `json:"started"`
	Status  string `json:"status"`
}

// --- Comment types ---

type postCommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

type commentResponse struct {
	ID         string    `json:"id"`
	TicketID   string    `json:"ticket_id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type postCommentResponse struct {
	ID string `json:"id"`
	// StartedProgress reports whether this reply auto-transitioned the
	// ticket from new to in_progress.
	StartedProgress bool `json:"started_progress"`
}
