package cmd

import (
	"context"
	"math/rand"
	"time"

	"alpharoot/config"
	"alpharoot/pkg/cache"
	"alpharoot/pkg/localstore"
	"alpharoot/pkg/logger"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AppDependency struct {
	cfg       *config.Config
	log       *logger.Logger
	validator *goValidator.Validate
	echo      *echo.Echo
	cache     cache.Cache
	store     *localstore.Store
	rng       *rand.Rand
}

func NewAppDependency(ctx context.Context) (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	store, err := localstore.Open(cfg.Storage.Path)
	if err != nil {
		log.Error("Failed to open local store", zap.Error(err))
		return nil, err
	}

	return &AppDependency{
		cfg:       cfg,
		log:       log,
		validator: goValidator.New(),
		echo:      echo.New(),
		cache:     cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval),
		store:     store,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	return d.log.Sync()
}
