package postgres

import (
	"fmt"

	"github.com/alealfarizi/portfolio-backend/config"
)

// DSN returns the connection string for the configured database. A full
// DATABASE_URL (hosted Postgres services hand these out) wins over the
// individual host/port fields.
func DSN(cfg *config.DatabaseConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name,
	)
}
