package main

import (
	"github.com/smallbiznis/sitesapi/internal/cache"
	"github.com/smallbiznis/sitesapi/internal/config"
	"github.com/smallbiznis/sitesapi/internal/migration"
	"github.com/smallbiznis/sitesapi/internal/observability"
	"github.com/smallbiznis/sitesapi/internal/server"
	"github.com/smallbiznis/sitesapi/internal/site"
	"github.com/smallbiznis/sitesapi/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		// Core Infrastructure
		config.Module,
		observability.Module,
		db.Module,
		migration.Module,
		cache.Module,

		// Functional Domains
		site.Module,
		server.Module,

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
	)
	app.Run()
}
