package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"talent-import-go/internal/config"
	"talent-import-go/internal/constants"
)

// ErrNotFound wraps redis.Nil so callers stay decoupled from the driver.
var ErrNotFound = redis.Nil

// Redis caches the per-owner identifier snapshots as sets so repeat uploads
// skip the full MySQL scan.
type Redis struct {
	Client *redis.Client
	config *config.RedisConfig
}

// NewRedisAdapter creates a Redis client and verifies the connection.
func NewRedisAdapter(cfg *config.RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config cannot be nil")
	}
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	opt := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,

		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,

		DialTimeout:  time.Duration(cfg.DialTimeoutSeconds) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,

		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: time.Duration(cfg.MinRetryBackoffMS) * time.Millisecond,
		MaxRetryBackoff: time.Duration(cfg.MaxRetryBackoffMS) * time.Millisecond,

		ConnMaxLifetime: time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute,
		ConnMaxIdleTime: time.Duration(cfg.ConnMaxIdleTimeMinutes) * time.Minute,
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Address, err)
	}

	return &Redis{Client: client, config: cfg}, nil
}

// Close closes the Redis client connection.
func (r *Redis) Close() error {
	return r.Client.Close()
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

// snapshotExpireDuration is how long a cached snapshot lives before the next
// batch reloads it from MySQL.
func (r *Redis) snapshotExpireDuration() time.Duration {
	hours := r.config.SnapshotExpireHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// CacheIdentifierSnapshot replaces the owner's cached email and phone sets.
func (r *Redis) CacheIdentifierSnapshot(ctx context.Context, ownerID string, emails, phones []string) error {
	emailKey := fmt.Sprintf(constants.KeySnapshotEmails, ownerID)
	phoneKey := fmt.Sprintf(constants.KeySnapshotPhones, ownerID)

	pipe := r.Client.TxPipeline()
	pipe.Del(ctx, emailKey, phoneKey)
	if len(emails) > 0 {
		pipe.SAdd(ctx, emailKey, toAnySlice(emails)...)
	}
	if len(phones) > 0 {
		pipe.SAdd(ctx, phoneKey, toAnySlice(phones)...)
	}
	pipe.Expire(ctx, emailKey, r.snapshotExpireDuration())
	pipe.Expire(ctx, phoneKey, r.snapshotExpireDuration())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache identifier snapshot for owner %s: %w", ownerID, err)
	}
	return nil
}

// GetIdentifierSnapshot returns the owner's cached sets. Both slices empty
// with a nil error means a cache miss; the caller falls back to MySQL.
func (r *Redis) GetIdentifierSnapshot(ctx context.Context, ownerID string) (emails, phones []string, err error) {
	emailKey := fmt.Sprintf(constants.KeySnapshotEmails, ownerID)
	phoneKey := fmt.Sprintf(constants.KeySnapshotPhones, ownerID)

	emails, err = r.Client.SMembers(ctx, emailKey).Result()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read email snapshot: %w", err)
	}
	phones, err = r.Client.SMembers(ctx, phoneKey).Result()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read phone snapshot: %w", err)
	}
	return emails, phones, nil
}

// appendIfExistsScript adds members only when the set already exists; an
// SADD on a missing key would create a partial snapshot.
var appendIfExistsScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
  return redis.call("SADD", KEYS[1], unpack(ARGV))
end
return 0
`)

// AppendIdentifiers adds newly confirmed identifiers to an existing cached
// snapshot so the cache stays usable between full reloads. Keys that do not
// exist are left alone; the next batch reloads them from MySQL anyway.
func (r *Redis) AppendIdentifiers(ctx context.Context, ownerID string, emails, phones []string) error {
	emailKey := fmt.Sprintf(constants.KeySnapshotEmails, ownerID)
	phoneKey := fmt.Sprintf(constants.KeySnapshotPhones, ownerID)

	if len(emails) > 0 {
		if err := appendIfExistsScript.Run(ctx, r.Client, []string{emailKey}, toAnySlice(emails)...).Err(); err != nil && err != redis.Nil {
			return fmt.Errorf("failed to append email identifiers for owner %s: %w", ownerID, err)
		}
	}
	if len(phones) > 0 {
		if err := appendIfExistsScript.Run(ctx, r.Client, []string{phoneKey}, toAnySlice(phones)...).Err(); err != nil && err != redis.Nil {
			return fmt.Errorf("failed to append phone identifiers for owner %s: %w", ownerID, err)
		}
	}
	return nil
}

// InvalidateSnapshot drops the owner's cached sets.
func (r *Redis) InvalidateSnapshot(ctx context.Context, ownerID string) error {
	return r.Client.Del(ctx,
		fmt.Sprintf(constants.KeySnapshotEmails, ownerID),
		fmt.Sprintf(constants.KeySnapshotPhones, ownerID),
	).Err()
}

func toAnySlice(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
