package storage

import (
	"context"
	"log"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/virtscope/vm-inventory/pkg/types"
)

const (
	inventoryKey     = "inventory"
	inventoryChannel = "inventoryChange"
)

// RedisStorage shares inventory snapshots between instances through redis,
// with a pub/sub channel announcing replacements.
type RedisStorage struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisStorage(addr, password string, db int) *RedisStorage {
	return &RedisStorage{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ctx: context.Background(),
	}
}

func (r *RedisStorage) Close() {
	r.client.Close()
}

// LoadSnapshot reads the shared record collection.
func (r *RedisStorage) LoadSnapshot() ([]types.VM, error) {
	data, err := r.client.Get(r.ctx, inventoryKey).Result()
	if err != nil {
		return nil, err
	}
	var items []types.VM
	if err := sonic.UnmarshalString(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveSnapshot replaces the shared record collection and announces the
// change to subscribers.
func (r *RedisStorage) SaveSnapshot(items []types.VM) error {
	data, err := sonic.MarshalString(items)
	if err != nil {
		return err
	}
	if err := r.client.Set(r.ctx, inventoryKey, data, 0).Err(); err != nil {
		return err
	}
	return r.client.Publish(r.ctx, inventoryChannel, "updated").Err()
}

// OnChange reloads the snapshot whenever another instance announces a
// replacement, handing the fresh collection to apply.
func (r *RedisStorage) OnChange(apply func([]types.VM)) {
	pubsub := r.client.Subscribe(r.ctx, inventoryChannel)
	go func(ch <-chan *redis.Message) {
		for range ch {
			items, err := r.LoadSnapshot()
			if err != nil {
				log.Printf("failed to reload inventory snapshot: %v", err)
				continue
			}
			apply(items)
		}
	}(pubsub.Channel())
}
