//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/sgasse/chrono-intervals/pkg/config"
	"github.com/sgasse/chrono-intervals/pkg/server"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		ProvideIntervalsUseCase,
		ProvideHandler,

		ProvideApp,
	)
	return &server.App{}, nil
}
