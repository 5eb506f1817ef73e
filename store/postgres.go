package store

import (
	"context"
	"log"
	"maps"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// Postgres error codes the store classifies.
const (
	pgUndefinedColumn = "42703"
	pgUndefinedTable  = "42P01"
)

// PostgresOptions configures OpenPostgres.
type PostgresOptions struct {
	DSN string
	// ReplicaDSN, when set, routes selects to a read replica.
	ReplicaDSN string
	Logger     logger.Interface
}

// OpenPostgres connects to a Postgres (or Supabase) database and checks the
// connection with a trivial query.
func OpenPostgres(opts PostgresOptions) (*gorm.DB, error) {
	gormLogger := opts.Logger
	if gormLogger == nil {
		gormLogger = logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             10 * time.Second,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  opts.DSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "connecting to database")
	}

	if opts.ReplicaDSN != "" {
		replica := postgres.New(postgres.Config{DSN: opts.ReplicaDSN, PreferSimpleProtocol: true})
		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{replica},
			Policy:   dbresolver.RandomPolicy{},
		})); err != nil {
			return nil, errors.Wrap(err, "registering read replica")
		}
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, errors.Wrap(err, "testing database connection")
	}
	return db, nil
}

// GormStore is a RowStore over a gorm connection. Rows are plain maps so
// column names pass through exactly as the schema adapter spells them.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// GetDB returns the underlying database connection for debugging purposes
func (s *GormStore) GetDB() *gorm.DB {
	return s.db
}

func (s *GormStore) Select(ctx context.Context, table string, q Query) ([]Row, error) {
	tx := s.db.WithContext(ctx).Table(table)
	for _, f := range q.Where {
		tx = tx.Where(eq(f))
	}
	if q.OrderBy != "" {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: q.OrderBy}})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var rows []Row
	if err := tx.Find(&rows).Error; err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

func (s *GormStore) Insert(ctx context.Context, table string, row Row) (Row, error) {
	stored := maps.Clone(row)
	err := s.db.WithContext(ctx).
		Table(table).
		Clauses(clause.Returning{}).
		Create(stored).Error
	if err != nil {
		return nil, classify(err)
	}
	return stored, nil
}

func (s *GormStore) Update(ctx context.Context, table string, row Row, where Filter) (int64, error) {
	res := s.db.WithContext(ctx).Table(table).Where(eq(where)).Updates(map[string]any(row))
	if res.Error != nil {
		return 0, classify(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormStore) Delete(ctx context.Context, table string, where Filter) error {
	err := s.db.WithContext(ctx).Exec(
		"DELETE FROM ? WHERE ? = ?",
		clause.Table{Name: table},
		clause.Column{Name: where.Column},
		where.Value,
	).Error
	if err != nil {
		return classify(err)
	}
	return nil
}

func eq(f Filter) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: f.Column}, Value: f.Value}
}

// classify maps driver errors onto the store's sentinels, keeping the
// original message for the operator.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUndefinedColumn:
			return errors.Wrap(ErrMissingColumn, pgErr.Message)
		case pgUndefinedTable:
			return errors.Wrap(ErrUnknownTable, pgErr.Message)
		}
	}

	// PostgREST style schema cache errors surface as plain text.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "could not find the") && strings.Contains(msg, "column") {
		return errors.Wrap(ErrMissingColumn, err.Error())
	}
	return errors.WithStack(err)
}
