package initializers

import (
	"context"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"hr-requests-backend/config"
	"hr-requests-backend/lib/badge"
)

func InitRedis(ctx context.Context) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Conf.Redis.Addr,
		Password: config.Conf.Redis.Password,
		DB:       config.Conf.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Error("redis is unreachable, badge counters fall back to the database")
		badge.NewHandler(nil)
		return
	}
	badge.NewHandler(client)
	log.Info("redis client initialized")
}
