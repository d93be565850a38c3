package redis_limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// LoginLimiter 基于Redis的登录失败次数限制器
// 按用户名计数,失败次数达到上限后在TTL窗口内拒绝后续登录尝试
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	keyPrefix   string
	ttl         time.Duration
}

// NewLoginLimiter 创建登录限制器
func NewLoginLimiter(client *redis.Client, maxAttempts int, keyPrefix string, ttl time.Duration) *LoginLimiter {
	return &LoginLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		keyPrefix:   keyPrefix,
		ttl:         ttl,
	}
}

// Allow 判断该用户名当前是否允许登录尝试
func (l *LoginLimiter) Allow(ctx context.Context, username string) (bool, error) {
	key := l.keyPrefix + username

	count, err := l.client.Get(ctx, key).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("读取失败计数失败: %w", err)
	}

	return count < l.maxAttempts, nil
}

// RecordFailure 记录一次失败的登录尝试
func (l *LoginLimiter) RecordFailure(ctx context.Context, username string) error {
	key := l.keyPrefix + username

	// 使用Lua脚本确保计数递增和过期时间设置的原子性
	script := redis.NewScript(
		`local count = redis.call('INCR', KEYS[1])
		if count == 1 then
			redis.call('EXPIRE', KEYS[1], tonumber(ARGV[1]))
		end
		return count`,
	)

	if _, err := script.Run(ctx, l.client, []string{key}, int(l.ttl.Seconds())).Result(); err != nil {
		return fmt.Errorf("执行Lua脚本失败: %w", err)
	}
	return nil
}

// Reset 登录成功后清除失败计数
func (l *LoginLimiter) Reset(ctx context.Context, username string) error {
	key := l.keyPrefix + username
	return l.client.Del(ctx, key).Err()
}

// GetMaxAttempts 获取最大尝试次数
func (l *LoginLimiter) GetMaxAttempts() int {
	return l.maxAttempts
}
