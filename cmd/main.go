package main

import (
	"log"

	"github.com/SongYerim/todak-BE-refactoring/config"
	"github.com/SongYerim/todak-BE-refactoring/internal/models"
	"github.com/SongYerim/todak-BE-refactoring/internal/router"
	"github.com/SongYerim/todak-BE-refactoring/internal/svc"
	"github.com/SongYerim/todak-BE-refactoring/internal/utils"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	utils.InitLogger(cfg.AppEnv)
	defer zap.L().Sync()

	s := svc.NewServiceContext(cfg)
	defer s.Close()

	err = s.DB.AutoMigrate(
		&models.User{},
		&models.MemorialHall{},
		&models.Participation{},
		&models.Wreath{},
		&models.Message{},
		&models.BadWord{},
		&models.Reaction{},
	)
	if err != nil {
		zap.L().Fatal("auto migration failed", zap.Error(err))
	}

	s.Consumer.Start()

	r := router.Setup(s)
	zap.L().Info("server starting", zap.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		zap.L().Fatal("server exited", zap.Error(err))
	}
}
