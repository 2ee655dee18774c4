package store

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// kvRecord is the single table behind the Postgres backend: one row per key,
// value as jsonb.
type kvRecord struct {
	Key   string         `gorm:"primaryKey;column:key"`
	Value datatypes.JSON `gorm:"type:jsonb;not null"`
}

func (kvRecord) TableName() string { return "kv_records" }

// Postgres is a Store over a jsonb key/value table, for deployments that
// want real durability behind the same adapter contract.
type Postgres struct {
	db *gorm.DB
}

// NewPostgres connects and auto-migrates the kv table.
func NewPostgres(databaseURL string) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	return NewPostgresDB(db)
}

// NewPostgresDB wraps an existing gorm connection (tests share one).
func NewPostgresDB(db *gorm.DB) (*Postgres, error) {
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, err
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(key string, v any) error {
	var rec kvRecord
	if err := p.db.First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(rec.Value, v)
}

func (p *Postgres) Put(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	rec := kvRecord{Key: key, Value: datatypes.JSON(raw)}
	return p.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
}

func (p *Postgres) Delete(key string) error {
	return p.db.Delete(&kvRecord{}, "key = ?", key).Error
}

func (p *Postgres) Keys() ([]string, error) {
	var keys []string
	if err := p.db.Model(&kvRecord{}).Pluck("key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

var _ Store = (*Postgres)(nil)
