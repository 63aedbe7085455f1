package mq

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/SongYerim/todak-BE-refactoring/internal/infra/cache"
	"github.com/SongYerim/todak-BE-refactoring/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TrendingKey is the redis ZSET scoring halls by recent wreath activity.
// Read by GET /halls/trending.
const TrendingKey = "halls:trending"

const WreathQueue = "wreath_queue"

type Consumer struct {
	db     *gorm.DB
	cache  *cache.RedisCache
	rabbit *RabbitMQ
}

func NewConsumer(db *gorm.DB, cache *cache.RedisCache, rabbit *RabbitMQ) *Consumer {
	return &Consumer{
		db:     db,
		cache:  cache,
		rabbit: rabbit,
	}
}

// Start launches the queue listeners. No-op when RabbitMQ is unavailable;
// trending simply stops updating.
func (c *Consumer) Start() {
	if c.rabbit == nil {
		return
	}
	go c.consumeWreathEvents()
}

func (c *Consumer) consumeWreathEvents() {
	msgs, err := c.rabbit.Consume(WreathQueue)
	if err != nil {
		zap.L().Error("failed to start wreath consumer", zap.Error(err))
		return
	}

	zap.L().Info("waiting for wreath messages")

	for d := range msgs {
		var msg models.WreathMsg
		if err := json.Unmarshal(d.Body, &msg); err != nil {
			zap.L().Error("failed to unmarshal wreath msg", zap.Error(err))
			continue
		}

		// Confirm the wreath actually landed before scoring it.
		var count int64
		c.db.Model(&models.Wreath{}).Where("id = ?", msg.WreathID).Count(&count)
		if count == 0 {
			zap.L().Warn("wreath event for unknown wreath", zap.Uint("wreath_id", msg.WreathID))
			continue
		}

		if c.cache == nil {
			continue
		}

		ctx := context.Background()
		member := strconv.FormatUint(uint64(msg.HallID), 10)
		if _, err := c.cache.ZIncrBy(ctx, TrendingKey, 1, member); err != nil {
			zap.L().Error("trending update failed", zap.Error(err))
			continue
		}

		zap.L().Info("trending updated", zap.Uint("hall_id", msg.HallID))
	}
}
