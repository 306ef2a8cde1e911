package components

import (
	"wayfare/internal/pkg/clock"
	"wayfare/internal/usecase/commands"
	"wayfare/internal/usecase/notify"
	"wayfare/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewDeliverer,
	notify.NewDispatcher,
)

func NewDeliverer() notify.Deliverer {
	return notify.NoopDeliverer{}
}

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityEngine,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewPaymentUseCase,
	),
)
