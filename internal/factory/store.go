package factory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clockbook/clockbook/server/internal/config"
	"github.com/clockbook/clockbook/server/internal/store"
	"github.com/clockbook/clockbook/server/internal/store/memory"
	"github.com/clockbook/clockbook/server/internal/store/postgres"
	"github.com/clockbook/clockbook/server/internal/store/sqlite"
)

// NewStore constructs the storage backend selected by cfg.DBDriver.
func NewStore(cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	switch cfg.DBDriver {
	case "memory":
		log.Info().Msg("using in-memory store; data does not survive restarts")
		return memory.New(), nil
	case "sqlite":
		log.Info().Str("path", cfg.SQLitePath).Msg("using sqlite store")
		return sqlite.New(cfg.SQLitePath)
	case "postgres":
		log.Info().Msg("using postgres store")
		return postgres.New(cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}
