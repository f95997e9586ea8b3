package repository

import (
	"context"
	"time"

	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

// NotificationRepository enqueues delivery jobs for a worker to pick up.
// Callers treat it as fire-and-forget; the booking flow swallows its errors.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(pool db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: pool}
}

const insertNotificationJobSQL = `
INSERT INTO notification_jobs (id, kind, topic, payload, run_at)
VALUES ($1, $2, $3, $4, $5)
`

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, insertNotificationJobSQL, uuid.New(), kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
