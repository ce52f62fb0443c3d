// Package storage aggregates the persistence dependencies: MySQL for
// candidate rows and batch audits, Redis for cached identifier snapshots,
// RabbitMQ for import lifecycle events.
package storage

import (
	"context"
	"fmt"
	"strings"

	"talent-import-go/internal/config"
	"talent-import-go/internal/logger"
)

// Storage aggregates all storage dependencies. Components that fail to
// initialize are left nil; callers check before use.
type Storage struct {
	MySQL    *MySQL
	Redis    *Redis
	RabbitMQ *RabbitMQ
}

// NewStorage initializes every configured component. It fails outright only
// when nothing could be initialized; a partially degraded setup (say, Redis
// down) still serves imports without the snapshot cache.
func NewStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}

	storage := &Storage{}
	var err error
	var initErrors []string

	if cfg.MySQL.Host != "" {
		storage.MySQL, err = NewMySQL(&cfg.MySQL)
		if err != nil {
			logger.Warn().Err(err).Msg("MySQL initialization failed")
			initErrors = append(initErrors, fmt.Sprintf("MySQL: %v", err))
		} else {
			logger.Info().Msg("MySQL connected, schema migrated")
		}
	}

	if cfg.Redis.Address != "" {
		storage.Redis, err = NewRedisAdapter(&cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("Redis initialization failed")
			initErrors = append(initErrors, fmt.Sprintf("Redis: %v", err))
		}
	} else {
		logger.Info().Msg("Redis not configured, snapshot cache disabled")
	}

	if cfg.RabbitMQ.URL != "" {
		storage.RabbitMQ, err = NewRabbitMQ(&cfg.RabbitMQ)
		if err != nil {
			logger.Warn().Err(err).Msg("RabbitMQ initialization failed")
			initErrors = append(initErrors, fmt.Sprintf("RabbitMQ: %v", err))
		}
	}

	if storage.MySQL == nil && storage.Redis == nil && storage.RabbitMQ == nil {
		return nil, fmt.Errorf("all storage components failed to initialize: %s", strings.Join(initErrors, "; "))
	}
	if len(initErrors) > 0 {
		logger.Warn().Strs("failures", initErrors).Msg("storage initialized in degraded mode")
	}
	return storage, nil
}

// Close releases every live component.
func (s *Storage) Close() {
	if s.MySQL != nil {
		if err := s.MySQL.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close MySQL")
		}
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close Redis")
		}
	}
	if s.RabbitMQ != nil {
		if err := s.RabbitMQ.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close RabbitMQ")
		}
	}
}
