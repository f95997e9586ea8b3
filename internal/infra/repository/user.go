package repository

import (
	"context"

	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/infra/db"
	"salon-booking-api/internal/pkg/pgconv"
	"salon-booking-api/internal/usecase/commands"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(pool db.DBTX) *UserRepository {
	return &UserRepository{db: pool}
}

const findUserByEmailSQL = `
SELECT id, email, password_hash, role
FROM users
WHERE email = $1
`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*commands.UserSnapshot, error) {
	var snapshot commands.UserSnapshot

	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&snapshot.ID,
		&snapshot.Email,
		&snapshot.PasswordHash,
		&snapshot.Role,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return &snapshot, nil
}
