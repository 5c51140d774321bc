package redislock

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stringx"
)

const (
	defaultExpire = 5
	tokenLength   = 16
)

// 只刪除自己持有的鎖
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
else
    return 0
end`)

// RedisLock 單次使用的分散式鎖，以 SETNX 搶鎖，過期自動釋放
type RedisLock struct {
	client redis.UniversalClient
	key    string
	token  string
	expire int
}

// New key 會加上 prefix，例如 New(rdb, "TEST-12345", "recharge-notify:")
func New(client redis.UniversalClient, key, prefix string) *RedisLock {
	return &RedisLock{
		client: client,
		key:    prefix + key,
		token:  stringx.Randn(tokenLength),
		expire: defaultExpire,
	}
}

// SetExpire 鎖的存活秒數
func (l *RedisLock) SetExpire(seconds int) {
	if seconds > 0 {
		l.expire = seconds
	}
}

func (l *RedisLock) Key() string {
	return l.key
}

func (l *RedisLock) Acquire() (bool, error) {
	return l.AcquireCtx(context.Background())
}

func (l *RedisLock) AcquireCtx(ctx context.Context) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key, l.token, time.Duration(l.expire)*time.Second).Result()
	if err != nil {
		logx.WithContext(ctx).Errorf("取得鎖失敗, key: %s, err: %v", l.key, err)
		return false, errors.Wrapf(err, "acquire lock %s", l.key)
	}
	return ok, nil
}

func (l *RedisLock) Release() (bool, error) {
	return l.ReleaseCtx(context.Background())
}

func (l *RedisLock) ReleaseCtx(ctx context.Context) (bool, error) {
	n, err := releaseScript.Run(ctx, l.client, []string{l.key}, l.token).Int64()
	if err != nil {
		logx.WithContext(ctx).Errorf("釋放鎖失敗, key: %s, err: %v", l.key, err)
		return false, errors.Wrapf(err, "release lock %s", l.key)
	}
	return n == 1, nil
}
