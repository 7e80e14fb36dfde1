package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type localEntry struct {
	expires time.Time
	data    []byte
}

// Cache fronts redis with a short lived in-process layer so a hot search
// term costs one redis round trip per node per minute at most.
type Cache struct {
	client *redis.Client
	ctx    context.Context
	mu     sync.Mutex
	local  map[string]localEntry
}

const localTTL = time.Minute

func NewCache(addr, password string, db int) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Cache{
		client: rdb,
		ctx:    context.Background(),
		local:  make(map[string]localEntry),
	}
}

func (c *Cache) Get(key string, out any) error {
	c.mu.Lock()
	entry, found := c.local[key]
	if found && time.Now().Before(entry.expires) {
		c.mu.Unlock()
		return json.Unmarshal(entry.data, out)
	}
	if found {
		delete(c.local, key)
	}
	c.mu.Unlock()

	data, err := c.client.Get(c.ctx, key).Bytes()
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, out); err != nil {
		return err
	}
	c.mu.Lock()
	c.local[key] = localEntry{expires: time.Now().Add(localTTL), data: data}
	c.mu.Unlock()
	return nil
}

func (c *Cache) Set(key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	ttl := min(expiration, localTTL)
	c.local[key] = localEntry{expires: time.Now().Add(ttl), data: data}
	c.mu.Unlock()
	return c.client.Set(c.ctx, key, data, expiration).Err()
}

func (c *Cache) Close() {
	c.client.Close()
}
