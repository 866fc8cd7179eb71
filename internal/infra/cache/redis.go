package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"supplyconnect/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

const (
	CatalogCacheKey = "catalog:visible"
	CatalogCacheTTL = 30 * time.Second
)

// REDIS_URLに接続する（PINGが通らなければエラー）
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// vendor向け一覧（絞り込み前）のキャッシュ
// clientがnilなら何もしない。
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client, ttl: CatalogCacheTTL}
}

// 無い・壊れている場合はfalse
func (c *CatalogCache) Get(ctx context.Context) ([]model.CatalogEntry, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, CatalogCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var entries []model.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (c *CatalogCache) Set(ctx context.Context, entries []model.CatalogEntry) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, CatalogCacheKey, data, c.ttl).Err()
}

// 商品の作成・更新・削除のあとに呼ぶ
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, CatalogCacheKey).Err()
}

// 固定ウィンドウのカウンタ（INCR + 期限が無ければEXPIRE）
type RateCounter struct {
	client *redis.Client
}

func NewRateCounter(client *redis.Client) *RateCounter {
	return &RateCounter{client: client}
}

var ErrNoClient = errors.New("redis client is nil")

// keyの現在の回数を返す
// 期限の無いキーは前回のEXPIREが失敗したもの。ここで付け直す。
func (r *RateCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	if r == nil || r.client == nil {
		return 0, ErrNoClient
	}

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	if ttl.Val() < 0 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return incr.Val(), err
		}
	}
	return incr.Val(), nil
}
