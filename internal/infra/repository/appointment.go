package repository

import (
	"context"
	"errors"
	"time"

	"salon-booking-api/internal/domain/appointment"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/infra/db"
	"salon-booking-api/internal/pkg/pgconv"
	"salon-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type AppointmentRepository struct {
	db db.DBTX
}

func NewAppointmentRepository(pool db.DBTX) *AppointmentRepository {
	return &AppointmentRepository{db: pool}
}

const insertAppointmentSQL = `
INSERT INTO appointments (id, salon_id, staff_id, user_id, start_at, end_at, status, duration_min, price_cents, note)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

const insertAppointmentServiceSQL = `
INSERT INTO appointment_services (appointment_id, service_id, duration_min, price_cents)
VALUES ($1, $2, $3, $4)
`

// Create inserts the appointment row and one price-snapshot row per service.
// Both run on the caller's transaction; a failed line insert rolls the whole
// booking back.
func (r *AppointmentRepository) Create(ctx context.Context, tx db.DBTX, appt *appointment.Appointment) error {
	slot := appt.TimeSlot()
	var note *string
	if !appt.Note().IsEmpty() {
		v := appt.Note().String()
		note = &v
	}

	_, err := tx.Exec(ctx, insertAppointmentSQL,
		appt.ID(),
		appt.SalonID(),
		appt.StaffID(),
		appt.UserID(),
		slot.Start(),
		slot.End(),
		appt.Status().String(),
		appt.DurationMinutes(),
		appt.Price().Cents(),
		pgconv.StringPtrToPgtype(note),
	)
	if err != nil {
		return wrapInsertErr("failed to create appointment", err)
	}

	for _, line := range appt.Services() {
		_, err := tx.Exec(ctx, insertAppointmentServiceSQL,
			appt.ID(), line.ServiceID, line.DurationMin, line.PriceCents,
		)
		if err != nil {
			return wrapInsertErr("failed to create appointment service", err)
		}
	}

	return nil
}

const lockStaffSQL = `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`

// LockStaff takes a transaction-scoped advisory lock keyed on the staff id.
// Two concurrent bookings for the same staff member serialize here, so the
// overlap count below always sees the earlier insert once it commits.
func (r *AppointmentRepository) LockStaff(ctx context.Context, tx db.DBTX, staffID uuid.UUID) error {
	if _, err := tx.Exec(ctx, lockStaffSQL, staffID); err != nil {
		return infra.WrapRepoErr("failed to acquire staff lock", err)
	}
	return nil
}

const countOverlapsSQL = `
SELECT count(*)
FROM appointments
WHERE staff_id = $1
  AND status IN ('pending', 'booked')
  AND start_at < $3
  AND end_at > $2
`

// CountBlockingOverlaps applies the canonical half-open interval test:
// [start, end) intersects an existing row iff start < end_at AND end > start_at.
// Back-to-back appointments sharing a bound do not count.
func (r *AppointmentRepository) CountBlockingOverlaps(
	ctx context.Context,
	tx db.DBTX,
	staffID uuid.UUID,
	start, end time.Time,
) (int64, error) {
	var count int64
	if err := tx.QueryRow(ctx, countOverlapsSQL, staffID, start, end).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping appointments", err)
	}
	return count, nil
}

const findAppointmentForUpdateSQL = `
SELECT id, salon_id, staff_id, user_id, status, start_at, end_at
FROM appointments
WHERE id = $1
FOR UPDATE
`

func (r *AppointmentRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*commands.AppointmentSnapshot, error) {
	var (
		snapshot commands.AppointmentSnapshot
		status   string
	)
	err := tx.QueryRow(ctx, findAppointmentForUpdateSQL, id).Scan(
		&snapshot.ID,
		&snapshot.SalonID,
		&snapshot.StaffID,
		&snapshot.UserID,
		&status,
		&snapshot.StartAt,
		&snapshot.EndAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment for update", err)
	}
	snapshot.Status = appointment.Status(status)
	return &snapshot, nil
}

const updateAppointmentStatusSQL = `
UPDATE appointments SET status = $2, updated_at = now() WHERE id = $1
`

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status appointment.Status) error {
	tag, err := tx.Exec(ctx, updateAppointmentStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func wrapInsertErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	}
	return infra.WrapRepoErr(msg, err)
}
