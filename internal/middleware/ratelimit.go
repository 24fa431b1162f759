package middleware

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/hours-api/pkg/config"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
	"github.com/noah-isme/hours-api/pkg/response"
)

// Decision is the outcome of one token bucket draw.
type Decision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// Bucket draws one token for key.
type Bucket interface {
	Take(ctx context.Context, key string, now time.Time) (Decision, error)
}

type rateLimitRecorder interface {
	ObserveRateLimited()
}

// tokenBucketScript refills by whole intervals and stores state in a hash
// that expires when idle.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])
if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local intervals = math.floor(math.max(0, now_ms - last_refill) / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + intervals * refill_tokens)
		last_refill = last_refill + intervals * interval_ms
	end
end

local allowed = 0
local retry_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)
return { allowed, tokens, retry_ms }
`)

// RedisBucket keeps bucket state in redis so limits hold across replicas.
type RedisBucket struct {
	client redis.Scripter
	cfg    config.RateLimitConfig
}

// NewRedisBucket constructs a redis backed bucket.
func NewRedisBucket(client redis.Scripter, cfg config.RateLimitConfig) *RedisBucket {
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Minute
	}
	return &RedisBucket{client: client, cfg: cfg}
}

// Take implements Bucket.
func (b *RedisBucket) Take(ctx context.Context, key string, now time.Time) (Decision, error) {
	raw, err := tokenBucketScript.Run(ctx, b.client, []string{key},
		now.UnixMilli(),
		b.cfg.Capacity,
		b.cfg.RefillTokens,
		b.cfg.RefillInterval.Milliseconds(),
		int64(b.cfg.TTL/time.Second),
	).Result()
	if err != nil {
		return Decision{}, err
	}
	return parseDecision(raw)
}

func parseDecision(raw interface{}) (Decision, error) {
	values, ok := raw.([]interface{})
	if !ok || len(values) != 3 {
		return Decision{}, fmt.Errorf("unexpected token bucket reply %#v", raw)
	}
	return Decision{
		Allowed:    asInt64(values[0]) == 1,
		Remaining:  asInt64(values[1]),
		RetryAfter: time.Duration(asInt64(values[2])) * time.Millisecond,
	}, nil
}

func asInt64(v interface{}) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

// RateLimit throttles callers by user id, or by client address before
// authentication. Bucket failures let the request through.
func RateLimit(cfg config.RateLimitConfig, bucket Bucket, recorder rateLimitRecorder, logger *zap.Logger) gin.HandlerFunc {
	if !cfg.Enabled || bucket == nil {
		return func(c *gin.Context) { c.Next() }
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "ratelimit"
	}
	return func(c *gin.Context) {
		key := prefix + ":ip:" + c.ClientIP()
		if user, ok := CurrentUser(c); ok {
			key = prefix + ":user:" + strconv.FormatInt(user.UserID, 10)
		}

		decision, err := bucket.Take(c.Request.Context(), key, time.Now())
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		header := c.Writer.Header()
		header.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
		header.Set("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))
		if !decision.Allowed {
			secs := int(math.Ceil(decision.RetryAfter.Seconds()))
			header.Set("Retry-After", strconv.Itoa(secs))
			if recorder != nil {
				recorder.ObserveRateLimited()
			}
			response.Abort(c, appErrors.ErrTooManyCalls)
			return
		}
		c.Next()
	}
}
