package database

import (
	"fmt"
	"time"

	"turbo-api/pkg/resource"
)

type Config struct {
	Host            string
	Port            string
	Username        string
	Password        string
	Database        string
	Schema          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ConfigFromProperties reads the app.db.* properties
func ConfigFromProperties() Config {
	return Config{
		Host:            resource.GetStringOrDefault("app.db.host", "localhost"),
		Port:            resource.GetStringOrDefault("app.db.port", "5432"),
		Username:        resource.GetString("app.db.username"),
		Password:        resource.GetString("app.db.password"),
		Database:        resource.GetString("app.db.database"),
		Schema:          resource.GetStringOrDefault("app.db.schema", "public"),
		SSLMode:         resource.GetStringOrDefault("app.db.ssl-mode", "disable"),
		MaxOpenConns:    resource.GetIntOrDefault("app.db.max-open-conns", 10),
		MaxIdleConns:    resource.GetIntOrDefault("app.db.max-idle-conns", 5),
		ConnMaxLifetime: resource.GetDurationOrDefault("app.db.conn-max-lifetime", 30*time.Minute),
	}
}

// DSN renders the key/value connection string understood by lib/pq and pgx
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode, c.Schema)
}

// Target is the DSN without credentials, for logs
func (c Config) Target() string {
	return fmt.Sprintf("%s:%s/%s", c.Host, c.Port, c.Database)
}
