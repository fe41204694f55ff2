package db

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"turbo-api/internal/domain/model"
)

const healthTimeout = 2 * time.Second

type SQLCHealthDBGateway struct {
	DB *sql.DB
}

var _ HealthDBGateway = (*SQLCHealthDBGateway)(nil)

func NewSQLCHealthDBGateway(db *sql.DB) *SQLCHealthDBGateway {
	return &SQLCHealthDBGateway{DB: db}
}

func (gateway *SQLCHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	if err := gateway.DB.PingContext(ctx); err != nil {
		return model.DownStatus(err)
	}

	stats := gateway.DB.Stats()
	return model.UpStatus(map[string]string{
		"open_connections": strconv.Itoa(stats.OpenConnections),
		"in_use":           strconv.Itoa(stats.InUse),
	})
}
