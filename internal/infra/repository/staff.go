package repository

import (
	"context"

	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/infra/db"
	"salon-booking-api/internal/pkg/pgconv"
	"salon-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type StaffRepository struct {
	db db.DBTX
}

func NewStaffRepository(pool db.DBTX) *StaffRepository {
	return &StaffRepository{db: pool}
}

const findStaffSQL = `
SELECT id, salon_id, name
FROM staff
WHERE id = $1
`

func (r *StaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.StaffSnapshot, error) {
	var snapshot commands.StaffSnapshot

	err := r.db.QueryRow(ctx, findStaffSQL, id).Scan(&snapshot.ID, &snapshot.SalonID, &snapshot.Name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff", err)
	}

	return &snapshot, nil
}
