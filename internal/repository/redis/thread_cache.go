package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

const (
	KeyThreadDetail = "thread:detail:%s"

	threadDetailTTL = 10 * time.Minute
)

type threadCache struct {
	client *redis.Client
}

var _ domain.ThreadCache = (*threadCache)(nil)

func NewThreadCache(client *redis.Client) *threadCache {
	return &threadCache{
		client,
	}
}

func (c *threadCache) GetDetail(ctx context.Context, threadID string) (res domain.DetailThread, err error) {
	key := fmt.Sprintf(KeyThreadDetail, threadID)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.DetailThread{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.DetailThread{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.DetailThread{}, err
	}
	return
}

func (c *threadCache) SetDetail(ctx context.Context, detail domain.DetailThread) error {
	key := fmt.Sprintf(KeyThreadDetail, detail.ID)
	data, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, threadDetailTTL).Err()
}

func (c *threadCache) DeleteDetail(ctx context.Context, threadID string) error {
	key := fmt.Sprintf(KeyThreadDetail, threadID)
	return c.client.Del(ctx, key).Err()
}
