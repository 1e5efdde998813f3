package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/mentor-hub/config"
	"github.com/oksasatya/mentor-hub/internal/domain/repository"
	"github.com/oksasatya/mentor-hub/pkg/helpers"
)

// app-level container to share constructed components across packages.
// The router builds its modules from these singletons; unset optional
// components (pool, redis, publisher) are nil.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	unitOfWork  repository.UnitOfWork
	redisClient *redis.Client
	jwtManager  *helpers.JWTManager
	rabbitPub   *helpers.RabbitPublisher
)

func SetConfig(c *config.Config)              { cfg = c }
func GetConfig() *config.Config               { return cfg }
func SetLogger(l *logrus.Logger)              { logger = l }
func SetPGPool(p *pgxpool.Pool)               { pgPool = p }
func GetPGPool() *pgxpool.Pool                { return pgPool }
func SetUnitOfWork(u repository.UnitOfWork)   { unitOfWork = u }
func GetUnitOfWork() repository.UnitOfWork    { return unitOfWork }
func SetRedis(r *redis.Client)                { redisClient = r }
func GetRedis() *redis.Client                 { return redisClient }
func SetJWT(m *helpers.JWTManager)            { jwtManager = m }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }

func GetLogger() *logrus.Logger {
	if logger != nil {
		return logger
	}
	return helpers.NewDiscardLogger()
}

// GetJWT falls back to a manager built from the loaded config.
func GetJWT() *helpers.JWTManager {
	if jwtManager == nil && cfg != nil {
		jwtManager = helpers.NewJWTManager(cfg.JWTSecret, cfg.AccessTTL)
	}
	return jwtManager
}

// Reset clears every component; tests use it between router setups.
func Reset() {
	cfg, logger, pgPool, unitOfWork, redisClient, jwtManager, rabbitPub = nil, nil, nil, nil, nil, nil, nil
}
