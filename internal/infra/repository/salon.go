package repository

import (
	"context"

	"salon-booking-api/internal/domain/schedule"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/infra/db"
	"salon-booking-api/internal/pkg/pgconv"
	"salon-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type SalonRepository struct {
	db db.DBTX
}

func NewSalonRepository(pool db.DBTX) *SalonRepository {
	return &SalonRepository{db: pool}
}

const findSalonSQL = `
SELECT id, name, hours
FROM salons
WHERE id = $1
`

func (r *SalonRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.SalonSnapshot, error) {
	var snapshot commands.SalonSnapshot
	var hours schedule.WeeklyHours

	err := r.db.QueryRow(ctx, findSalonSQL, id).Scan(&snapshot.ID, &snapshot.Name, &hours)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("salon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find salon", err)
	}

	snapshot.Hours = hours
	return &snapshot, nil
}
