package database

import (
	"fmt"

	"github.com/eduproject/catalog/config"
	"github.com/eduproject/catalog/store"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Connect opens the row store selected by DB_TYPE. The gorm handle is nil
// for the in-memory store.
func Connect(c map[string]string) (store.RowStore, *gorm.DB, error) {
	dbType := config.GetString(c, "DB_TYPE", "")

	var dsn string
	switch dbType {
	case "supa":
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			config.GetString(c, "SUPABASE_DB_HOST", ""),
			config.GetString(c, "SUPABASE_DB_USER", ""),
			config.GetString(c, "SUPABASE_DB_PASSWORD", ""),
			config.GetString(c, "SUPABASE_DB_NAME", ""),
			config.GetString(c, "SUPABASE_DB_PORT", "5432"),
		)
		log.Info().Msg("Connecting to Supabase database...")
	case "postgres":
		dsn = config.GetString(c, "DATABASE_URL", "")
		if dsn == "" {
			return nil, nil, errors.New("DATABASE_URL is required for DB_TYPE=postgres")
		}
		log.Info().Msg("Connecting to Postgres database...")
	case "memory":
		log.Warn().Msg("Using in-memory store, data is lost on exit")
		return store.NewMemoryStore(), nil, nil
	default:
		return nil, nil, errors.Errorf("unsupported DB_TYPE %q", dbType)
	}

	db, err := store.OpenPostgres(store.PostgresOptions{
		DSN:        dsn,
		ReplicaDSN: config.GetString(c, "DB_REPLICA_URL", ""),
	})
	if err != nil {
		return nil, nil, err
	}
	return store.NewGormStore(db), db, nil
}
