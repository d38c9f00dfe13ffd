// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"admas/config"

	"github.com/go-redis/redis/v8"
)

var (
	// FormCacheClient holds in-progress booking form sessions.
	FormCacheClient *redis.Client
	// PrefsCacheClient is the dedicated client for per-user preference records
	// (route cache, car form cache, admin view prefs, quiz answers).
	PrefsCacheClient *redis.Client
)

// InitFormCache initializes the Redis client backing form sessions.
func InitFormCache() {
	FormCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisFormDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := FormCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Form Cache): %v", err)
	}
}

// GetFormCacheClient returns the Redis client for form sessions.
func GetFormCacheClient() *redis.Client {
	if FormCacheClient == nil {
		InitFormCache()
	}
	return FormCacheClient
}

// InitPrefsCache initializes the Redis client for preference records.
func InitPrefsCache() {
	PrefsCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPrefsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := PrefsCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Prefs Cache): %v", err)
	}
}

// GetPrefsCacheClient returns the Redis client for preference records.
func GetPrefsCacheClient() *redis.Client {
	if PrefsCacheClient == nil {
		InitPrefsCache()
	}
	return PrefsCacheClient
}
