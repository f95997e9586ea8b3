package commands

import (
	"context"
	"time"

	"salon-booking-api/internal/domain/appointment"
	"salon-booking-api/internal/domain/schedule"
	"salon-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots keep the command layer off the read-side view types.
type SalonSnapshot struct {
	ID    uuid.UUID
	Name  string
	Hours schedule.WeeklyHours
}

type StaffSnapshot struct {
	ID      uuid.UUID
	SalonID uuid.UUID
	Name    string
}

type ServiceSnapshot struct {
	ID          uuid.UUID
	Name        string
	DurationMin int32
	PriceCents  int32
}

type AppointmentSnapshot struct {
	ID      uuid.UUID
	SalonID uuid.UUID
	StaffID uuid.UUID
	UserID  uuid.UUID
	Status  appointment.Status
	StartAt time.Time
	EndAt   time.Time
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
}

type SalonRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalonSnapshot, error)
}

type StaffRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StaffSnapshot, error)
}

type ServiceRepository interface {
	// FindForSalon resolves only services actually offered by the salon; a
	// service that exists but is not associated with the salon is not returned.
	FindForSalon(ctx context.Context, salonID uuid.UUID, serviceIDs []uuid.UUID) ([]*ServiceSnapshot, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx db.DBTX, appt *appointment.Appointment) error
	// LockStaff serializes concurrent bookings for one staff member via a
	// transaction-scoped advisory lock, so the conflict check below cannot
	// race a concurrently committing insert regardless of isolation level.
	LockStaff(ctx context.Context, tx db.DBTX, staffID uuid.UUID) error
	CountBlockingOverlaps(ctx context.Context, tx db.DBTX, staffID uuid.UUID, start, end time.Time) (int64, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*AppointmentSnapshot, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status appointment.Status) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}
