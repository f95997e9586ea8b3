package queries

import (
	"context"
	"strings"
	"time"

	"salon-booking-api/internal/domain/schedule"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/pkg/clock"
	"salon-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSalonNotFound = errs.New("salon not found")
)

const availabilityWindowDays = 7

type SalonReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalonView, error)
}

type BookedIntervalReadStore interface {
	// FindBookedIntervals returns the [start_at, end_at) pairs of booked
	// appointments for the salon whose start_at falls inside [from, to].
	FindBookedIntervals(ctx context.Context, salonID uuid.UUID, from, to time.Time) ([]schedule.Interval, error)
}

type AvailabilityQueries interface {
	GetWeeklyAvailability(ctx context.Context, salonID uuid.UUID) ([]schedule.DayAvailability, error)
}

type availabilityQueriesImpl struct {
	salonStore SalonReadStore
	apptStore  BookedIntervalReadStore
	clock      clock.Clock
}

func NewAvailabilityQueries(
	salonStore SalonReadStore,
	apptStore BookedIntervalReadStore,
	clock clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		salonStore: salonStore,
		apptStore:  apptStore,
		clock:      clock,
	}
}

// GetWeeklyAvailability builds the bookable hourly slots for the next 7
// calendar days (today + 6), oldest first. Appointments are fetched once for
// the whole window, not per day.
func (q *availabilityQueriesImpl) GetWeeklyAvailability(ctx context.Context, salonID uuid.UUID) ([]schedule.DayAvailability, error) {
	salon, err := q.salonStore.FindByID(ctx, salonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, errs.Wrap(err, "failed to find salon")
	}

	from := clock.Today(q.clock)
	to := from.AddDate(0, 0, availabilityWindowDays).Add(-time.Millisecond)

	booked, err := q.apptStore.FindBookedIntervals(ctx, salonID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load booked appointments")
	}

	week := make([]schedule.DayAvailability, 0, availabilityWindowDays)
	for i := 0; i < availabilityWindowDays; i++ {
		date := from.AddDate(0, 0, i)
		weekday := strings.ToLower(date.Weekday().String())
		hours, open := salon.Hours.RangeFor(weekday)
		week = append(week, schedule.BuildDayAvailability(date, hours, open, booked))
	}

	return week, nil
}
