//go:build unit || e2e

package builder

import (
	"time"

	domappt "salon-booking-api/internal/domain/appointment"
	reqdto "salon-booking-api/internal/handler/dto/request"
	"salon-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	SalonID   uuid.UUID
	SalonName string
	StaffID   uuid.UUID
	StaffName string
	UserID    uuid.UUID
	StartAt   time.Time
	Services  []domappt.ServiceLine
	Note      *string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Now().UTC()
	startAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return &AppointmentBuilder{
		SalonID:   uuid.New(),
		SalonName: "Shear Genius",
		StaffID:   uuid.New(),
		StaffName: "Dana",
		UserID:    uuid.New(),
		StartAt:   startAt,
		Services: []domappt.ServiceLine{
			{ServiceID: uuid.New(), Name: "Haircut", DurationMin: 30, PriceCents: 2000},
			{ServiceID: uuid.New(), Name: "Color", DurationMin: 45, PriceCents: 3500},
		},
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *AppointmentBuilder) BuildDomain() (*domappt.Appointment, error) {
	note := domappt.NewNote("")
	if b.Note != nil {
		note = domappt.NewNote(*b.Note)
	}
	return domappt.NewAppointment(b.SalonID, b.StaffID, b.UserID, b.StartAt, b.Services, note)
}

func (b *AppointmentBuilder) BuildBookRequestDTO() reqdto.BookAppointmentRequest {
	serviceIDs := make([]uuid.UUID, len(b.Services))
	for i, svc := range b.Services {
		serviceIDs[i] = svc.ServiceID
	}
	return reqdto.BookAppointmentRequest{
		SalonID:    b.SalonID,
		StaffID:    b.StaffID,
		StartAt:    b.StartAt,
		ServiceIDs: serviceIDs,
		Note:       b.Note,
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	var totalMinutes, totalCents int32
	services := make([]queries.AppointmentServiceView, len(b.Services))
	for i, svc := range b.Services {
		totalMinutes += svc.DurationMin
		totalCents += svc.PriceCents
		services[i] = queries.AppointmentServiceView{
			ServiceID:   svc.ServiceID,
			Name:        svc.Name,
			DurationMin: svc.DurationMin,
			PriceCents:  svc.PriceCents,
		}
	}
	return &queries.AppointmentView{
		ID:          uuid.New(),
		SalonID:     b.SalonID,
		SalonName:   b.SalonName,
		StaffID:     b.StaffID,
		StaffName:   b.StaffName,
		UserID:      b.UserID,
		StartAt:     b.StartAt,
		EndAt:       b.StartAt.Add(time.Duration(totalMinutes) * time.Minute),
		Status:      b.Status,
		DurationMin: totalMinutes,
		PriceCents:  totalCents,
		Note:        b.Note,
		Services:    services,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *AppointmentBuilder) BuildListItem() *queries.AppointmentListItem {
	var totalMinutes, totalCents int32
	for _, svc := range b.Services {
		totalMinutes += svc.DurationMin
		totalCents += svc.PriceCents
	}
	return &queries.AppointmentListItem{
		ID:         uuid.New(),
		SalonID:    b.SalonID,
		SalonName:  b.SalonName,
		StaffName:  b.StaffName,
		StartAt:    b.StartAt,
		EndAt:      b.StartAt.Add(time.Duration(totalMinutes) * time.Minute),
		Status:     b.Status,
		PriceCents: totalCents,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *AppointmentBuilder) WithSalonID(id uuid.UUID) *AppointmentBuilder {
	b.SalonID = id
	return b
}

func (b *AppointmentBuilder) WithStaffID(id uuid.UUID) *AppointmentBuilder {
	b.StaffID = id
	return b
}

func (b *AppointmentBuilder) WithUserID(id uuid.UUID) *AppointmentBuilder {
	b.UserID = id
	return b
}

func (b *AppointmentBuilder) WithStartAt(startAt time.Time) *AppointmentBuilder {
	b.StartAt = startAt
	return b
}

func (b *AppointmentBuilder) WithServices(services ...domappt.ServiceLine) *AppointmentBuilder {
	b.Services = services
	return b
}

func (b *AppointmentBuilder) WithNote(note string) *AppointmentBuilder {
	b.Note = &note
	return b
}

func (b *AppointmentBuilder) WithStatus(status string) *AppointmentBuilder {
	b.Status = status
	return b
}
