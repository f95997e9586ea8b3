package repository

import (
	"context"

	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/infra/db"
	"salon-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type ServiceRepository struct {
	db db.DBTX
}

func NewServiceRepository(pool db.DBTX) *ServiceRepository {
	return &ServiceRepository{db: pool}
}

const findServicesForSalonSQL = `
SELECT s.id, s.name, s.duration_min, s.price_cents
FROM services s
JOIN salon_services ss ON ss.service_id = s.id
WHERE ss.salon_id = $1
  AND s.id = ANY($2)
`

// FindForSalon resolves services through the salon association; a service id
// that exists but is not offered by the salon is simply absent from the result.
func (r *ServiceRepository) FindForSalon(
	ctx context.Context,
	salonID uuid.UUID,
	serviceIDs []uuid.UUID,
) ([]*commands.ServiceSnapshot, error) {
	rows, err := r.db.Query(ctx, findServicesForSalonSQL, salonID, serviceIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find services for salon", err)
	}
	defer rows.Close()

	var result []*commands.ServiceSnapshot
	for rows.Next() {
		var snapshot commands.ServiceSnapshot
		if err := rows.Scan(&snapshot.ID, &snapshot.Name, &snapshot.DurationMin, &snapshot.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		result = append(result, &snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", err)
	}

	return result, nil
}
