package readstore

import (
	"context"
	"time"

	"salon-booking-api/internal/domain/schedule"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/infra/db"
	"salon-booking-api/internal/pkg/pgconv"
	"salon-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(pool db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: pool}
}

const getAppointmentByIDSQL = `
SELECT a.id, a.salon_id, sa.name, a.staff_id, st.name, a.user_id,
       a.start_at, a.end_at, a.status, a.duration_min, a.price_cents, a.note,
       a.created_at, a.updated_at
FROM appointments a
JOIN salons sa ON sa.id = a.salon_id
JOIN staff st ON st.id = a.staff_id
WHERE a.id = $1
`

const getAppointmentServicesSQL = `
SELECT aps.service_id, sv.name, aps.duration_min, aps.price_cents
FROM appointment_services aps
JOIN services sv ON sv.id = aps.service_id
WHERE aps.appointment_id = $1
ORDER BY sv.name
`

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	var (
		view      queries.AppointmentView
		note      pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, getAppointmentByIDSQL, id).Scan(
		&view.ID, &view.SalonID, &view.SalonName, &view.StaffID, &view.StaffName, &view.UserID,
		&view.StartAt, &view.EndAt, &view.Status, &view.DurationMin, &view.PriceCents, &note,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}

	view.Note = pgconv.StringPtrFromPgtype(note)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	services, err := r.loadServices(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Services = services

	return &view, nil
}

func (r *AppointmentReadStore) loadServices(ctx context.Context, appointmentID uuid.UUID) ([]queries.AppointmentServiceView, error) {
	rows, err := r.db.Query(ctx, getAppointmentServicesSQL, appointmentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load appointment services", err)
	}
	defer rows.Close()

	services := []queries.AppointmentServiceView{}
	for rows.Next() {
		var svc queries.AppointmentServiceView
		if err := rows.Scan(&svc.ServiceID, &svc.Name, &svc.DurationMin, &svc.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment service row", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointment service rows", err)
	}

	return services, nil
}

const getAppointmentsByUserSQL = `
SELECT a.id, a.salon_id, sa.name, st.name, a.start_at, a.end_at, a.status, a.price_cents, a.created_at
FROM appointments a
JOIN salons sa ON sa.id = a.salon_id
JOIN staff st ON st.id = a.staff_id
WHERE a.user_id = $1
ORDER BY a.start_at DESC
`

func (r *AppointmentReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, getAppointmentsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find appointments by user", err)
	}
	defer rows.Close()

	var items []*queries.AppointmentListItem
	for rows.Next() {
		var (
			item      queries.AppointmentListItem
			createdAt pgtype.Timestamptz
		)
		err := rows.Scan(
			&item.ID, &item.SalonID, &item.SalonName, &item.StaffName,
			&item.StartAt, &item.EndAt, &item.Status, &item.PriceCents, &createdAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment list row", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointment list rows", err)
	}

	return items, nil
}

const getBookedIntervalsSQL = `
SELECT start_at, end_at
FROM appointments
WHERE salon_id = $1
  AND status = 'booked'
  AND start_at BETWEEN $2 AND $3
ORDER BY start_at
`

// FindBookedIntervals is the availability window query: one fetch for the
// whole 7-day range, filtered to booked appointments whose start falls inside
// [from, to].
func (r *AppointmentReadStore) FindBookedIntervals(
	ctx context.Context,
	salonID uuid.UUID,
	from, to time.Time,
) ([]schedule.Interval, error) {
	rows, err := r.db.Query(ctx, getBookedIntervalsSQL, salonID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booked intervals", err)
	}
	defer rows.Close()

	var intervals []schedule.Interval
	for rows.Next() {
		var interval schedule.Interval
		if err := rows.Scan(&interval.Start, &interval.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked interval", err)
		}
		intervals = append(intervals, interval)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booked intervals", err)
	}

	return intervals, nil
}
