package domain

import "errors"

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrAccessDenied       = errors.New("access denied")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileExists      = errors.New("profile already exists")
	ErrCommentTooLong     = errors.New("comment exceeds maximum length")
	ErrCommentEmpty       = errors.New("comment content is required")
	// ErrCommentLocked is returned when a delete targets anything other than
	// the most recent comment of an unresolved ticket.
	ErrCommentLocked = errors.New("comment can no longer be deleted")
	ErrMailDelivery  = errors.New("mail delivery failed")
)
