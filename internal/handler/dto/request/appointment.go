package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	SalonID    uuid.UUID   `json:"salon_id" binding:"required"`
	StaffID    uuid.UUID   `json:"staff_id" binding:"required"`
	StartAt    time.Time   `json:"start_at" binding:"required"`
	ServiceIDs []uuid.UUID `json:"service_ids" binding:"required,min=1"`
	Note       *string     `json:"note,omitempty"`
}

func (r BookAppointmentRequest) GetNote() *string {
	if r.Note == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
