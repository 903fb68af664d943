//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"tod/internal"
	"tod/internal/controllers"
	"tod/internal/providers"
	"tod/internal/services"
	"tod/internal/structures"
	"tod/internal/timelog"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		services.NewTimeLogService,
		timelog.NewZstdCompressor,
		timelog.NewFileManager,
		timelog.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
