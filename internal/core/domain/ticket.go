package domain

import "time"

// TicketStatus represents the lifecycle state of a support ticket.
type TicketStatus string

const (
	StatusNew        TicketStatus = "new"
	StatusAssigned   TicketStatus = "assigned"
	StatusInProgress TicketStatus = "in_progress"
	StatusOnHold     TicketStatus = "on_hold"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

// TicketType classifies the kind of work a ticket asks for.
type TicketType string

const (
	TypeProblem        TicketType = "problem"
	TypeTask           TicketType = "task"
	TypeServiceRequest TicketType = "service_request"
)

// TicketPriority is the urgency assigned to a ticket. "urgent" is accepted on
// the wire but not offered by any client; it behaves like "high".
type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
	PriorityUrgent TicketPriority = "urgent"
)

// validTransitions defines the allowed state machine transitions.
// Every status may move to resolved (closing is unconditional); only new and
// resolved tickets may move to in_progress.
var validTransitions = map[TicketStatus][]TicketStatus{
	StatusNew:        {StatusInProgress, StatusResolved},
	StatusAssigned:   {StatusResolved},
	StatusInProgress: {StatusResolved},
	StatusOnHold:     {StatusResolved},
	StatusResolved:   {StatusInProgress, StatusResolved},
	StatusClosed:     {StatusResolved},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s TicketStatus) CanTransitionTo(next TicketStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Ticket is the core aggregate root: one unit of support work tracked through
// its status lifecycle.
type Ticket struct {
	ID          string         `json:"id" bson:"_id"`
	Title       string         `json:"title" bson:"title"`
	Description string         `json:"description" bson:"description"`
	Type        TicketType     `json:"type" bson:"type"`
	Status      TicketStatus   `json:"status" bson:"status"`
	Priority    TicketPriority `json:"priority" bson:"priority"`
	CreatedBy   string         `json:"created_by" bson:"created_by"`
	AssignedTo  string         `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}

// CanBeViewedBy is the single visibility rule for tickets: staff see
// everything, everyone else only tickets they created or are assigned to.
func (t *Ticket) CanBeViewedBy(userID, role string) bool {
	if IsStaffRole(role) {
		return true
	}
	return t.CreatedBy == userID || (t.AssignedTo != "" && t.AssignedTo == userID)
}
