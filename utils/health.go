package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest probe of the stores the booking flow depends on:
// Mongo for pickup records, Redis for in-flight draft sessions.
type HealthStatus struct {
	PickupStore  bool      `json:"pickupStore"`
	SessionCache bool      `json:"sessionCache"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes the record store and session cache every minute
// and keeps the snapshot in memory for the health endpoint.
func StartHealthMonitor(sessionCache *redis.Client, pickupStore *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			status := HealthStatus{
				PickupStore:  pickupStore.Ping(ctx, nil) == nil,
				SessionCache: sessionCache.Ping(ctx).Err() == nil,
				CheckedAt:    time.Now(),
			}
			cancel()

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}
	}()
}
