package utils

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/trongdat-dev/volunteer-hub-backend/config"
)

// RedisClient is the shared Redis handle, set by InitRedis.
var RedisClient *redis.Client

// InitRedis connects to Redis and verifies connectivity with a ping.
func InitRedis(cfg *config.Config) error {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	log.Printf("✅ Redis connected at %s", cfg.RedisAddr)
	RedisClient = client
	return nil
}
