// Package sink creates the dataset tables and bulk-loads generated rows.
package sink

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"realestate-seed/internal/config"
	"realestate-seed/internal/logger"
	"realestate-seed/internal/schema"
)

var (
	ErrStoreExists  = errors.New("store already exists")
	ErrStoreMissing = errors.New("store does not exist")
	ErrTableExists  = errors.New("table already exists")
)

// Sink owns the store connection for one run.
type Sink struct {
	db        *gorm.DB
	batchSize int
}

func New(db *gorm.DB, batchSize int) *Sink {
	if batchSize <= 0 {
		batchSize = config.DefaultBatchSize
	}
	return &Sink{db: db, batchSize: batchSize}
}

// Open connects to postgres when cfg.DatabaseURL is set, otherwise to the
// sqlite file at cfg.DBPath.
func Open(cfg *config.Config) (*Sink, error) {
	var dialector gorm.Dialector
	if cfg.UsesPostgres() {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger()})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return New(db, cfg.BatchSize), nil
}

func gormLogger() gormlogger.Interface {
	level := gormlogger.Silent
	if logger.Log.IsLevelEnabled(logrus.DebugLevel) {
		level = gormlogger.Info
	}
	return gormlogger.New(logger.Log, gormlogger.Config{LogLevel: level})
}

// Prepare makes sure a sqlite file from a prior run does not get reused.
// With force the old file is removed, otherwise ErrStoreExists is returned.
func Prepare(path string, force bool) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to stat store %s: %w", path, err)
	}

	if !force {
		return fmt.Errorf("%w: %s", ErrStoreExists, path)
	}
	for _, suffix := range []string{"", "-journal", "-wal", "-shm"} {
		if err := os.Remove(path + suffix); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove store %s: %w", path+suffix, err)
		}
	}
	logger.Log.Warnf("Removed existing store %s", path)
	return nil
}

// OpenExisting is Open for commands that read a previous run; it never
// creates a new sqlite file.
func OpenExisting(cfg *config.Config) (*Sink, error) {
	if !cfg.UsesPostgres() {
		if _, err := os.Stat(cfg.DBPath); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStoreMissing, cfg.DBPath)
		}
	}
	return Open(cfg)
}

func (s *Sink) DB() *gorm.DB {
	return s.db
}

func (s *Sink) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateTable creates the table for model. A table of the same name must
// not exist yet.
func (s *Sink) CreateTable(model interface{}) error {
	table, err := schema.CreateTableFromModel(model)
	if err != nil {
		return fmt.Errorf("failed to parse model: %w", err)
	}

	if s.db.Migrator().HasTable(table.TableName()) {
		return fmt.Errorf("%w: %s", ErrTableExists, table.TableName())
	}
	if err := s.db.Migrator().CreateTable(model); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table.TableName(), err)
	}
	return nil
}

// Load creates the table for T and inserts rows in a single transaction.
func Load[T any](s *Sink, rows []T) error {
	model := new(T)
	if err := s.CreateTable(model); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(rows, s.batchSize).Error; err != nil {
			return fmt.Errorf("failed to insert rows: %w", err)
		}
		return nil
	})
}
