package app

import (
	"context"
	"database/sql"
	"fmt"

	"go-pms/internal/apar"
	"go-pms/internal/config"
	"go-pms/internal/employee"
	"go-pms/internal/kpi"
	"go-pms/internal/kpisummary"
	"go-pms/internal/messaging/kafka"
	"go-pms/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the shared connections every process opens.
type Infra struct {
	Config config.Config
	GormDB *gorm.DB
	DB     *sql.DB
	Redis  *redis.Client
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.DB != nil {
		_ = i.DB.Close()
	}
}

// Connect opens Postgres, and Redis when withRedis is set.
func Connect(cfg config.Config, withRedis bool) (*Infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, cfg.DBMaxRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	zap.L().Info("database connection established", zap.String("host", cfg.Postgres.Host))

	infra := &Infra{Config: cfg, GormDB: gormDB, DB: sqlDB}
	if !withRedis {
		return infra, nil
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	zap.L().Info("redis connection established", zap.String("addr", cfg.RedisAddr))
	infra.Redis = rdb
	return infra, nil
}

// Migrate creates or updates every table the service owns.
func Migrate(ctx context.Context, gormDB *gorm.DB) error {
	db := gormDB.WithContext(ctx)
	if err := db.AutoMigrate(
		&employee.Employee{},
		&kpi.KPI{},
		&kpisummary.KpiSummary{},
		&apar.Apar{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := db.Exec(kafka.OutboxSchema).Error; err != nil {
		return fmt.Errorf("outbox schema: %w", err)
	}
	return nil
}

// BuildApp connects the infrastructure and registers every HTTP module.
// The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	infra, err := Connect(cfg, true)
	if err != nil {
		return nil, err
	}

	if err := registerModules(router, infra); err != nil {
		infra.Close()
		return nil, err
	}
	return infra.Close, nil
}
