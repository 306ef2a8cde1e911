package components

import (
	"wayfare/internal/infra/cache"
	"wayfare/internal/infra/db"
	"wayfare/internal/infra/payments"
	"wayfare/internal/infra/readstore"
	"wayfare/internal/infra/uow"
	"wayfare/internal/pkg/config"
	"wayfare/internal/scheduler"
	"wayfare/internal/usecase/queries"
	"wayfare/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		// Listing reads go through the Redis look-aside cache.
		NewCachedListingReadStore,
		fx.Annotate(
			readstore.NewTripDateReadStore,
			fx.As(new(queries.TripDateReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.OverlapReadStore)),
			fx.As(new(scheduler.SweepSource)),
		),
		NewPaymentGateway,
	),
)

func NewPaymentGateway(cfg config.Config) shared.PaymentGateway {
	return payments.NewStripeGateway(cfg.Stripe)
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCachedListingReadStore(dbtx db.DBTX, rdb *redis.Client, cfg config.Config) queries.ListingReadStore {
	return cache.NewListingCache(readstore.NewListingReadStore(dbtx), rdb, cfg.Redis.ListingTTL)
}
