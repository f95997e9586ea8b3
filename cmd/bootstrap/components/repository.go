package components

import (
	"salon-booking-api/internal/infra/db"
	"salon-booking-api/internal/infra/readstore"
	repo_impl "salon-booking-api/internal/infra/repository"
	"salon-booking-api/internal/usecase/commands"
	"salon-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewSalonRepository,
			fx.As(new(commands.SalonRepository)),
		),
		fx.Annotate(
			repo_impl.NewStaffRepository,
			fx.As(new(commands.StaffRepository)),
		),
		fx.Annotate(
			repo_impl.NewServiceRepository,
			fx.As(new(commands.ServiceRepository)),
		),
		fx.Annotate(
			repo_impl.NewAppointmentRepository,
			fx.As(new(commands.AppointmentRepository)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewSalonReadStore,
			fx.As(new(queries.SalonReadStore)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
			fx.As(new(queries.BookedIntervalReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
