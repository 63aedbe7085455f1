package svc

import (
	"context"
	"time"

	"github.com/SongYerim/todak-BE-refactoring/config"
	"github.com/SongYerim/todak-BE-refactoring/internal/infra/cache"
	"github.com/SongYerim/todak-BE-refactoring/internal/infra/db"
	"github.com/SongYerim/todak-BE-refactoring/internal/infra/storage"
	"github.com/SongYerim/todak-BE-refactoring/internal/middleware"
	"github.com/SongYerim/todak-BE-refactoring/internal/mq"
	"github.com/SongYerim/todak-BE-refactoring/internal/utils"

	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ServiceContext holds every shared dependency. Cache, Rabbit and Storage
// may be nil; callers degrade gracefully.
type ServiceContext struct {
	Config  *config.Config
	DB      *gorm.DB
	Cache   *cache.RedisCache
	Rabbit  *mq.RabbitMQ
	Storage *storage.FileStorage

	Consumer *mq.Consumer

	tracerProvider *trace.TracerProvider
}

// NewServiceContext is the single initialization entry point.
func NewServiceContext(cfg *config.Config) *ServiceContext {
	dbConn := db.InitMySQL(cfg)

	rdb, err := cache.New(cfg)
	if err != nil {
		zap.L().Warn("Redis connection failed, continuing without Redis", zap.Error(err))
	} else {
		zap.L().Info("Redis connected successfully")
		utils.RedisClient = rdb
	}

	rabbit, err := mq.New(cfg)
	if err != nil {
		zap.L().Warn("RabbitMQ connection failed, trending updates disabled", zap.Error(err))
	} else {
		zap.L().Info("RabbitMQ connected successfully")
	}

	var storageSvc *storage.FileStorage
	if cfg.MinioEndpoint != "" {
		storageSvc, err = storage.NewFileStorage(
			cfg.MinioEndpoint,
			cfg.MinioPublicURL,
			cfg.MinioAccessKey,
			cfg.MinioSecretKey,
			cfg.MinioBucket,
		)
		if err != nil {
			zap.L().Warn("MinIO connection failed, thumbnail upload disabled", zap.Error(err))
		}
	}

	consumer := mq.NewConsumer(dbConn, rdb, rabbit)

	tp, err := middleware.InitTracer("todak-api", cfg.JaegerEndpoint)
	if err != nil {
		zap.L().Fatal("failed to init tracer", zap.Error(err))
	}

	return &ServiceContext{
		Config:         cfg,
		DB:             dbConn,
		Cache:          rdb,
		Rabbit:         rabbit,
		Storage:        storageSvc,
		Consumer:       consumer,
		tracerProvider: tp,
	}
}

func (s *ServiceContext) Close() {
	if s.tracerProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.tracerProvider.Shutdown(ctx); err != nil {
			zap.L().Error("Tracer shutdown error", zap.Error(err))
		}
	}

	if s.Rabbit != nil {
		s.Rabbit.Close()
		zap.L().Info("RabbitMQ closed")
	}
}
