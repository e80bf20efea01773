package redis

import (
	"context"
	"fmt"

	"turf-booking/config"

	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func SetupClient(cfg *config.RedisConfig, log *otelzap.Logger) *redis.Client {
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Ctx(ctx).Fatal("error connect to redis", zap.Error(err))
	}

	return client
}
