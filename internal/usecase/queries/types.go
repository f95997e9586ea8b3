package queries

import (
	"time"

	"salon-booking-api/internal/domain/schedule"

	"github.com/google/uuid"
)

type SalonView struct {
	ID    uuid.UUID
	Name  string
	Hours schedule.WeeklyHours
}

type AppointmentServiceView struct {
	ServiceID   uuid.UUID `json:"serviceId"`
	Name        string    `json:"name"`
	DurationMin int32     `json:"durationMin"`
	PriceCents  int32     `json:"priceCents"`
}

type AppointmentView struct {
	ID          uuid.UUID                `json:"id"`
	SalonID     uuid.UUID                `json:"salonId"`
	SalonName   string                   `json:"salonName"`
	StaffID     uuid.UUID                `json:"staffId"`
	StaffName   string                   `json:"staffName"`
	UserID      uuid.UUID                `json:"userId"`
	StartAt     time.Time                `json:"startAt"`
	EndAt       time.Time                `json:"endAt"`
	Status      string                   `json:"status"`
	DurationMin int32                    `json:"durationMin"`
	PriceCents  int32                    `json:"priceCents"`
	Note        *string                  `json:"note,omitempty"`
	Services    []AppointmentServiceView `json:"services"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

type AppointmentListItem struct {
	ID         uuid.UUID `json:"id"`
	SalonID    uuid.UUID `json:"salonId"`
	SalonName  string    `json:"salonName"`
	StaffName  string    `json:"staffName"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	Status     string    `json:"status"`
	PriceCents int32     `json:"priceCents"`
	CreatedAt  time.Time `json:"createdAt"`
}

type UserView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}
