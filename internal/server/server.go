package server

import (
	"net/http"

	"github.com/shashiranjanraj/plantnet/config"
	"github.com/shashiranjanraj/plantnet/internal/kernel"
	"github.com/shashiranjanraj/plantnet/internal/store"
	"github.com/shashiranjanraj/plantnet/pkg/cache"
	"github.com/shashiranjanraj/plantnet/pkg/logger"
)

// Start boots the process: config, store, optional cache and log sink, then
// the HTTP listener. The store is required; Redis and the Mongo log sink are
// best-effort.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := store.Connect(); err != nil {
		return err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, catalog cache disabled", "error", err)
	}

	if config.LogToMongo() {
		if _, err := logger.EnableMongoSink(config.MongoURI(), config.MongoDB(), store.Logs); err != nil {
			logger.Warn("mongo log sink unavailable", "error", err)
		}
	}

	addr := ":" + config.AppPort()
	logger.Info("plantNet server running", "addr", addr, "env", config.AppEnv())
	return http.ListenAndServe(addr, kernel.Handler())
}
