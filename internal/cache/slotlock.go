package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// SlotLock is a short-TTL hold on a slot taken before the booking-create
// transaction. It cheaply rejects racing students; the database row lock
// remains the authority.
type SlotLock struct {
	client *redis.Client
}

func NewSlotLock(addr, password string, db int) *SlotLock {
	return &SlotLock{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (l *SlotLock) AcquireClaim(ctx context.Context, slotID string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, holdKey(slotID), "1", ttl).Result()
}

func (l *SlotLock) ReleaseClaim(ctx context.Context, slotID string) error {
	return l.client.Del(ctx, holdKey(slotID)).Err()
}

func (l *SlotLock) Close() error {
	return l.client.Close()
}

func holdKey(slotID string) string {
	return "slot_hold:" + slotID
}
