package database

import (
	"context"
	"fmt"
	"invrent-service/internal/app/config"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects the store that holds admin sessions and the
// category/location cache. Redis is required.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password:     driverConfig.Redis.Password,
		DB:           driverConfig.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		log.Fatalf("Could not connect to Redis at %s: %v", rdb.Options().Addr, err)
	}

	log.Println("Successfully connected to redis")
	return rdb
}
