// Package kvstore is the device-local durable store. It exposes three
// named partitions holding JSON documents, backed by a single SQLite
// file so records survive process restarts on the agent's handset.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Partition names. They are the only partitions the agent uses; keeping
// them here avoids stringly-typed call sites drifting apart.
const (
	PartitionClients  = "clients"
	PartitionPayments = "payments"
	PartitionCounters = "counters"
)

// ErrNotFound is returned by Get when no value is stored under the key.
// Absence is a valid state, distinct from an I/O failure.
var ErrNotFound = errors.New("kvstore: key not found")

type record struct {
	Partition string `gorm:"primaryKey;size:32"`
	Key       string `gorm:"primaryKey;size:128"`
	Value     []byte
}

func (record) TableName() string { return "kv_records" }

// Store is a partitioned key-value store over SQLite. Writes are
// committed before Put returns.
type Store struct {
	db  *gorm.DB
	log *logrus.Logger
}

// Open opens (creating if needed) the store at path. The parent
// directory is created for file-backed stores; ":memory:" works for
// tests.
func Open(path string, log *logrus.Logger) (*Store, error) {
	if log == nil {
		log = logrus.New()
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("migrate local store: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Get decodes the value stored under (partition, key) into out. Returns
// ErrNotFound when nothing is stored there.
func (s *Store) Get(ctx context.Context, partition, key string, out any) error {
	var rec record
	err := s.db.WithContext(ctx).
		Where("partition = ? AND key = ?", partition, key).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("read %s/%s: %w", partition, key, err)
	}
	if err := json.Unmarshal(rec.Value, out); err != nil {
		return fmt.Errorf("decode %s/%s: %w", partition, key, err)
	}
	return nil
}

// Put stores value under (partition, key), replacing any prior value.
// The write is durable once Put returns.
func (s *Store) Put(ctx context.Context, partition, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", partition, key, err)
	}
	rec := record{Partition: partition, Key: key, Value: raw}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("write %s/%s: %w", partition, key, err)
	}
	return nil
}

// Close releases the underlying SQLite handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
