package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// SlotCache fronts the available-slots calculation. One redis hash per
// (chamber, date), fielded by doctor, so a booking mutation invalidates the
// whole day with a single DEL. Redis being unreachable degrades to misses;
// it never fails a request.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotCache(rdb *redis.Client) *SlotCache {
	return &SlotCache{
		rdb: rdb,
		ttl: 30 * time.Second,
	}
}

func dayKey(chamberID uint, date string) string {
	return fmt.Sprintf("slots:%d:%s", chamberID, date)
}

func doctorField(doctorID *uint) string {
	if doctorID == nil {
		return "all"
	}
	return fmt.Sprintf("%d", *doctorID)
}

func (c *SlotCache) Get(
	ctx context.Context,
	chamberID uint,
	date string,
	doctorID *uint,
) ([]string, bool) {

	raw, err := c.rdb.HGet(ctx, dayKey(chamberID, date), doctorField(doctorID)).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *SlotCache) Set(
	ctx context.Context,
	chamberID uint,
	date string,
	doctorID *uint,
	slots []string,
) {
	b, err := json.Marshal(slots)
	if err != nil {
		return
	}

	key := dayKey(chamberID, date)
	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, key, doctorField(doctorID), b)
	pipe.Expire(ctx, key, c.ttl)
	_, _ = pipe.Exec(ctx)
}

// Invalidate drops every cached doctor entry for the chamber's day.
func (c *SlotCache) Invalidate(ctx context.Context, chamberID uint, date string) {
	_ = c.rdb.Del(ctx, dayKey(chamberID, date)).Err()
}
