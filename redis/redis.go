package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

const slotCacheTTL = 60 * time.Second

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

func slotKey(garageID uint, date string) string {
	return fmt.Sprintf("slots:%d:%s", garageID, date)
}

// GetCachedSlots returns the cached available-slots payload for a
// garage and date, or "" on a miss. Redis being down is treated as a
// miss, never an error.
func GetCachedSlots(garageID uint, date string) string {
	if Client == nil {
		return ""
	}
	val, err := Client.Get(Ctx, slotKey(garageID, date)).Result()
	if err != nil {
		return ""
	}
	return val
}

// CacheSlots stores an available-slots payload with a short TTL.
// Schedule edits rely on expiry; booking mutations call DropSlots.
func CacheSlots(garageID uint, date string, payload string) {
	if Client == nil {
		return
	}
	Client.Set(Ctx, slotKey(garageID, date), payload, slotCacheTTL)
}

// DropSlots invalidates the cached payload for one garage/date.
func DropSlots(garageID uint, date string) {
	if Client == nil {
		return
	}
	Client.Del(Ctx, slotKey(garageID, date))
}
