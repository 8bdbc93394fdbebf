package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// SignalDeduper suppresses webhook replays: the payload hash is written
// with SETNX and lives for the replay window, so the same broadcast
// can't be re-sent to every paid user inside it.
type SignalDeduper struct {
	Client *redis.Client
	Window time.Duration
}

func NewSignalDeduper(client *redis.Client, window time.Duration) *SignalDeduper {
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &SignalDeduper{Client: client, Window: window}
}

// SeenRecently marks the key and reports whether it was already marked.
// The mark and the check are one atomic SETNX, so two concurrent
// deliveries of the same payload can't both pass.
func (d *SignalDeduper) SeenRecently(ctx context.Context, key string) (bool, error) {
	set, err := d.Client.SetNX(ctx, "signal:dedup:"+key, 1, d.Window).Result()
	if err != nil {
		return false, err
	}
	return !set, nil
}
