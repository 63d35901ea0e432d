package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wyfcoding/voguevault/pkg/logger"
)

// RedisConfig Redis 存储后端配置
type RedisConfig struct {
	Host        string
	Port        int
	Password    string
	DB          int
	MaxPoolSize int
	// KeyPrefix 键名前缀，隔离多实例数据
	KeyPrefix string
}

// RedisStore 基于 Redis 的存储后端
type RedisStore struct {
	client *redis.Client
	prefix string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore 创建 Redis 存储后端并验证连通性
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.MaxPoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info(context.Background(), "Redis storage connected", "addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port))
	return &RedisStore{client: client, prefix: cfg.KeyPrefix}, nil
}

func (s *RedisStore) redisKey(key Key) string {
	return s.prefix + ":" + string(key)
}

// Get 读取并解码快照；任何失败按"不存在"处理
func (s *RedisStore) Get(ctx context.Context, key Key, dest any) bool {
	val, err := s.client.Get(ctx, s.redisKey(key)).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		logger.Warn(ctx, "Failed to read snapshot from Redis", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		logger.Warn(ctx, "Corrupted snapshot ignored", "key", key, "error", err)
		return false
	}
	return true
}

// Set 序列化并写入快照；失败仅记录日志
func (s *RedisStore) Set(ctx context.Context, key Key, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn(ctx, "Snapshot write dropped", "key", key, "error", err)
		return
	}
	if err := s.client.Set(ctx, s.redisKey(key), data, 0).Err(); err != nil {
		logger.Warn(ctx, "Snapshot write dropped", "key", key, "error", err)
	}
}

// Clear 删除快照，幂等
func (s *RedisStore) Clear(ctx context.Context, key Key) {
	if err := s.client.Del(ctx, s.redisKey(key)).Err(); err != nil {
		logger.Warn(ctx, "Failed to clear snapshot", "key", key, "error", err)
	}
}

// Close 关闭 Redis 连接
func (s *RedisStore) Close() error {
	return s.client.Close()
}
