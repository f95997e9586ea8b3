package readstore

import (
	"context"

	"salon-booking-api/internal/domain/schedule"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/infra/db"
	"salon-booking-api/internal/pkg/pgconv"
	"salon-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type SalonReadStore struct {
	db db.DBTX
}

func NewSalonReadStore(pool db.DBTX) *SalonReadStore {
	return &SalonReadStore{db: pool}
}

const getSalonByIDSQL = `
SELECT id, name, hours
FROM salons
WHERE id = $1
`

func (r *SalonReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SalonView, error) {
	var view queries.SalonView
	var hours schedule.WeeklyHours

	err := r.db.QueryRow(ctx, getSalonByIDSQL, id).Scan(&view.ID, &view.Name, &hours)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("salon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find salon by ID", err)
	}

	view.Hours = hours
	return &view, nil
}
