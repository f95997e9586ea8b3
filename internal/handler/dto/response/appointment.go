package response

import (
	"log/slog"
	"time"

	"salon-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentServiceResponse struct {
	ServiceID   uuid.UUID `json:"serviceId"`
	Name        string    `json:"name"`
	DurationMin int32     `json:"durationMin"`
	PriceCents  int32     `json:"priceCents"`
}

type AppointmentResponse struct {
	ID          uuid.UUID                    `json:"id"`
	SalonID     uuid.UUID                    `json:"salonId"`
	SalonName   string                       `json:"salonName"`
	StaffID     uuid.UUID                    `json:"staffId"`
	StaffName   string                       `json:"staffName"`
	UserID      uuid.UUID                    `json:"userId"`
	StartAt     time.Time                    `json:"startAt"`
	EndAt       time.Time                    `json:"endAt"`
	Status      string                       `json:"status"`
	DurationMin int32                        `json:"durationMin"`
	PriceCents  int32                        `json:"priceCents"`
	Note        *string                      `json:"note,omitempty"`
	Services    []AppointmentServiceResponse `json:"services"`
	CreatedAt   time.Time                    `json:"createdAt"`
	UpdatedAt   time.Time                    `json:"updatedAt"`
}

type AppointmentListResponse struct {
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

type BookAppointmentResponse struct {
	Success     bool                 `json:"success"`
	Appointment *AppointmentResponse `json:"appointment"`
}

func FromAppointmentView(view *queries.AppointmentView) *AppointmentResponse {
	resp := &AppointmentResponse{}
	if err := copier.Copy(resp, view); err != nil {
		slog.Error("failed to map appointment view", "error", err)
		return resp
	}
	if resp.Services == nil {
		resp.Services = []AppointmentServiceResponse{}
	}
	return resp
}

func FromAppointmentListItems(items []*queries.AppointmentListItem) []AppointmentListResponse {
	out := make([]AppointmentListResponse, 0, len(items))
	if err := copier.Copy(&out, &items); err != nil {
		slog.Error("failed to map appointment list", "error", err)
	}
	return out
}
