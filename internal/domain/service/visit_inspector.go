package service

import "linkvault/internal/domain/entity"

// VisitRequest is what the transport knows about a viewer.
type VisitRequest struct {
	IP        string
	UserAgent string
	Referer   string
}

// VisitInspector derives the analytics attributes of a view.
type VisitInspector interface {
	// Inspect returns the visit attributes, and false when the request comes from a bot.
	Inspect(req VisitRequest) (entity.Visit, bool)
}
