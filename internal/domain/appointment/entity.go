package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoServices        = errors.New("appointment requires at least one service")
	ErrInvalidService    = errors.New("service has invalid duration or price")
	ErrInvalidTimeSlot   = errors.New("invalid time slot")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ServiceLine is the booking-time snapshot of one catalog service. Price and
// duration are copied, not referenced, so later catalog edits never alter a
// historical invoice.
type ServiceLine struct {
	ServiceID   uuid.UUID
	Name        string
	DurationMin int32
	PriceCents  int32
}

type Appointment struct {
	id        uuid.UUID
	salonID   uuid.UUID
	staffID   uuid.UUID
	userID    uuid.UUID
	timeSlot  TimeSlot
	status    Status
	price     Money
	services  []ServiceLine
	note      Note
	createdAt time.Time
	updatedAt time.Time
}

// NewAppointment builds a pending appointment from a requested start time and
// the resolved service lines. End time, duration and price are derived:
// end = start + sum(durations), price = sum(prices).
func NewAppointment(
	salonID, staffID, userID uuid.UUID,
	startAt time.Time,
	services []ServiceLine,
	note Note,
) (*Appointment, error) {
	if len(services) == 0 {
		return nil, ErrNoServices
	}

	var totalMinutes int32
	var totalCents int32
	for _, svc := range services {
		if svc.DurationMin <= 0 || svc.PriceCents < 0 {
			return nil, ErrInvalidService
		}
		totalMinutes += svc.DurationMin
		totalCents += svc.PriceCents
	}

	slot, err := NewTimeSlot(startAt, startAt.Add(time.Duration(totalMinutes)*time.Minute))
	if err != nil {
		return nil, ErrInvalidTimeSlot
	}

	price, err := NewMoney(totalCents)
	if err != nil {
		return nil, ErrInvalidService
	}

	return &Appointment{
		id:       uuid.New(),
		salonID:  salonID,
		staffID:  staffID,
		userID:   userID,
		timeSlot: slot,
		status:   StatusPending,
		price:    price,
		services: services,
		note:     note,
	}, nil
}

func ReconstructAppointment(
	id, salonID, staffID, userID uuid.UUID,
	timeSlot TimeSlot,
	status Status,
	price Money,
	services []ServiceLine,
	note Note,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:        id,
		salonID:   salonID,
		staffID:   staffID,
		userID:    userID,
		timeSlot:  timeSlot,
		status:    status,
		price:     price,
		services:  services,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Confirm marks a pending appointment as booked (payment confirmed).
func (a *Appointment) Confirm() error {
	return a.transitionTo(StatusBooked)
}

// Cancel works from pending (payment timeout, explicit cancel) or booked.
func (a *Appointment) Cancel() error {
	return a.transitionTo(StatusCancelled)
}

// Complete marks a booked appointment as delivered.
func (a *Appointment) Complete() error {
	return a.transitionTo(StatusCompleted)
}

func (a *Appointment) transitionTo(next Status) error {
	if !a.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.status = next
	return nil
}

func (a *Appointment) IsBlocking() bool {
	return a.status.Blocking()
}

func (a *Appointment) ID() uuid.UUID           { return a.id }
func (a *Appointment) SalonID() uuid.UUID      { return a.salonID }
func (a *Appointment) StaffID() uuid.UUID      { return a.staffID }
func (a *Appointment) UserID() uuid.UUID       { return a.userID }
func (a *Appointment) TimeSlot() TimeSlot      { return a.timeSlot }
func (a *Appointment) Status() Status          { return a.status }
func (a *Appointment) Price() Money            { return a.price }
func (a *Appointment) Services() []ServiceLine { return a.services }
func (a *Appointment) Note() Note              { return a.note }
func (a *Appointment) DurationMinutes() int32  { return a.timeSlot.DurationMinutes() }
func (a *Appointment) CreatedAt() time.Time    { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time    { return a.updatedAt }
