package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"salon-booking-api/internal/domain/appointment"
	"salon-booking-api/internal/domain/user"
	reqdto "salon-booking-api/internal/handler/dto/request"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/pkg/clock"
	"salon-booking-api/internal/pkg/errs"
	"salon-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSalonNotFound           = errs.New("salon not found")
	ErrStaffNotFound           = errs.New("staff not found")
	ErrStaffNotInSalon         = errs.New("staff does not belong to salon")
	ErrServicesUnavailable     = errs.New("services unavailable for salon")
	ErrAppointmentNotFound     = errs.New("appointment not found")
	ErrAppointmentConflict     = errs.New("appointment time conflict")
	ErrNotAppointmentOwner     = errs.New("appointment belongs to another user")
	ErrInvalidTransition       = errs.New("invalid appointment status transition")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ServicesUnavailableError reports exactly which requested services could not
// be resolved against the salon's catalog.
type ServicesUnavailableError struct {
	Requested int
	Found     int
	Missing   []uuid.UUID
}

func (e *ServicesUnavailableError) Error() string {
	return fmt.Sprintf("requested %d services, found %d for salon", e.Requested, e.Found)
}

func (e *ServicesUnavailableError) Unwrap() error {
	return ErrServicesUnavailable
}

type AppointmentCommands interface {
	Book(ctx context.Context, req reqdto.BookAppointmentRequest, userID uuid.UUID) (*queries.AppointmentView, error)
	Confirm(ctx context.Context, id, userID uuid.UUID, role user.Role) error
	Cancel(ctx context.Context, id, userID uuid.UUID, role user.Role) error
	Complete(ctx context.Context, id, userID uuid.UUID, role user.Role) error
}

type appointmentCommandsImpl struct {
	appointmentRepo    AppointmentRepository
	salonRepo          SalonRepository
	staffRepo          StaffRepository
	serviceRepo        ServiceRepository
	notificationRepo   NotificationRepository
	appointmentQueries queries.AppointmentQueries
	db                 *pgxpool.Pool
	clock              clock.Clock
}

func NewAppointmentCommands(
	appointmentRepo AppointmentRepository,
	salonRepo SalonRepository,
	staffRepo StaffRepository,
	serviceRepo ServiceRepository,
	notificationRepo NotificationRepository,
	appointmentQueries queries.AppointmentQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		appointmentRepo:    appointmentRepo,
		salonRepo:          salonRepo,
		staffRepo:          staffRepo,
		serviceRepo:        serviceRepo,
		notificationRepo:   notificationRepo,
		appointmentQueries: appointmentQueries,
		db:                 db,
		clock:              clock,
	}
}

// Book validates the request against the catalog, rejects double-bookings for
// the staff member, and persists the appointment plus its service price
// snapshots as one transaction.
func (c *appointmentCommandsImpl) Book(
	ctx context.Context,
	req reqdto.BookAppointmentRequest,
	userID uuid.UUID,
) (*queries.AppointmentView, error) {
	staff, err := c.validateStaff(ctx, req.SalonID, req.StaffID)
	if err != nil {
		return nil, err
	}

	lines, err := c.resolveServices(ctx, req.SalonID, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	note := appointment.NewNote("")
	if trimmed := req.GetNote(); trimmed != nil {
		note = appointment.NewNote(*trimmed)
	}

	appt, err := appointment.NewAppointment(req.SalonID, staff.ID, userID, req.StartAt.UTC(), lines, note)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.reserveInTransaction(ctx, appt); err != nil {
		return nil, err
	}

	// Read-after-write: serve the full joined view from the read store.
	view, err := c.appointmentQueries.GetByID(ctx, appt.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.notifyBooked(ctx, view)

	return view, nil
}

func (c *appointmentCommandsImpl) validateStaff(ctx context.Context, salonID, staffID uuid.UUID) (*StaffSnapshot, error) {
	if _, err := c.salonRepo.FindByID(ctx, salonID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	staff, err := c.staffRepo.FindByID(ctx, staffID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if staff.SalonID != salonID {
		return nil, ErrStaffNotInSalon
	}

	return staff, nil
}

// resolveServices requires every requested id to resolve to a service offered
// by the salon; the resolved count must match the requested count exactly.
func (c *appointmentCommandsImpl) resolveServices(
	ctx context.Context,
	salonID uuid.UUID,
	serviceIDs []uuid.UUID,
) ([]appointment.ServiceLine, error) {
	found, err := c.serviceRepo.FindForSalon(ctx, salonID, serviceIDs)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if len(found) != len(serviceIDs) {
		resolved := make(map[uuid.UUID]bool, len(found))
		for _, svc := range found {
			resolved[svc.ID] = true
		}
		var missing []uuid.UUID
		for _, id := range serviceIDs {
			if !resolved[id] {
				missing = append(missing, id)
			}
		}
		return nil, &ServicesUnavailableError{
			Requested: len(serviceIDs),
			Found:     len(found),
			Missing:   missing,
		}
	}

	lines := make([]appointment.ServiceLine, len(found))
	for i, svc := range found {
		lines[i] = appointment.ServiceLine{
			ServiceID:   svc.ID,
			Name:        svc.Name,
			DurationMin: svc.DurationMin,
			PriceCents:  svc.PriceCents,
		}
	}
	return lines, nil
}

func (c *appointmentCommandsImpl) reserveInTransaction(ctx context.Context, appt *appointment.Appointment) error {
	tx, err := c.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errs.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback booking transaction", "error", rollbackErr)
		}
	}()

	if err := c.appointmentRepo.LockStaff(ctx, tx, appt.StaffID()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slot := appt.TimeSlot()
	overlaps, err := c.appointmentRepo.CountBlockingOverlaps(ctx, tx, appt.StaffID(), slot.Start(), slot.End())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if overlaps > 0 {
		return ErrAppointmentConflict
	}

	if err := c.appointmentRepo.Create(ctx, tx, appt); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrAppointmentConflict
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// notifyBooked is fire-and-forget: a failed notification must never make an
// already-committed booking look failed to the client.
func (c *appointmentCommandsImpl) notifyBooked(ctx context.Context, view *queries.AppointmentView) {
	payload, err := json.Marshal(map[string]any{
		"appointment_id": view.ID,
		"user_id":        view.UserID,
		"salon_name":     view.SalonName,
		"start_at":       view.StartAt,
	})
	if err != nil {
		slog.Warn("failed to marshal booking notification", "error", err)
		return
	}

	if err := c.notificationRepo.CreateJob(ctx, "push", "appointment_requested", payload, c.clock.Now()); err != nil {
		slog.Warn("failed to enqueue booking notification",
			"appointment_id", view.ID, "error", err)
	}
}

func (c *appointmentCommandsImpl) Confirm(ctx context.Context, id, userID uuid.UUID, role user.Role) error {
	return c.transition(ctx, id, appointment.StatusBooked, userID, role)
}

func (c *appointmentCommandsImpl) Cancel(ctx context.Context, id, userID uuid.UUID, role user.Role) error {
	return c.transition(ctx, id, appointment.StatusCancelled, userID, role)
}

func (c *appointmentCommandsImpl) Complete(ctx context.Context, id, userID uuid.UUID, role user.Role) error {
	return c.transition(ctx, id, appointment.StatusCompleted, userID, role)
}

// Customers may only transition their own appointments; manager and admin
// roles act on any.
func (c *appointmentCommandsImpl) transition(ctx context.Context, id uuid.UUID, next appointment.Status, userID uuid.UUID, role user.Role) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errs.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transition transaction", "error", rollbackErr)
		}
	}()

	snapshot, err := c.appointmentRepo.FindByIDForUpdate(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAppointmentNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if role == user.RoleCustomer && snapshot.UserID != userID {
		return ErrNotAppointmentOwner
	}

	if !snapshot.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}

	if err := c.appointmentRepo.UpdateStatus(ctx, tx, id, next); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
