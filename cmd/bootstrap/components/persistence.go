package components

import (
	"padelbook/internal/infra/db"
	"padelbook/internal/infra/readstore"
	"padelbook/internal/infra/uow"
	"padelbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Invitation
		fx.Annotate(
			readstore.NewInvitationReadStore,
			fx.As(new(queries.InvitationReadStore)),
		),
		// Company
		fx.Annotate(
			readstore.NewCompanyReadStore,
			fx.As(new(queries.CompanyReadStore)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(queries.UserTierReader)),
			fx.As(new(queries.UserPostalReader)),
		),
		// Wallet
		fx.Annotate(
			readstore.NewWalletReadStore,
			fx.As(new(queries.WalletReadStore)),
		),
	),
)

// Write-side repositories are created per-transaction by the unit of work, so
// only the UoW itself is provided here.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
