package di

import (
	"github.com/hazemhalim/dukkan/internal/adapter/notify"
	"github.com/hazemhalim/dukkan/internal/app"
	"github.com/hazemhalim/dukkan/internal/config"
	"github.com/hazemhalim/dukkan/internal/logger"
	"github.com/hazemhalim/dukkan/internal/pkg/auth"
	"github.com/hazemhalim/dukkan/internal/server/http/handlers"
	"github.com/hazemhalim/dukkan/internal/server/http/router"
	"github.com/hazemhalim/dukkan/internal/storage/postgres"
	"github.com/hazemhalim/dukkan/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(func(facade *app.StoreFacade) handlers.StoreFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
