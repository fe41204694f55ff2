package sqlc

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"turbo-api/internal/infra/database"

	_ "github.com/lib/pq"
)

// Open connects with lib/pq and verifies the connection with a ping
func Open(ctx context.Context, cfg database.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.Target(), err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database %s: %w", cfg.Target(), err)
	}
	return db, nil
}
