package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// appState is the key/value row the GormStore persists into.
type appState struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Value     []byte `gorm:"type:blob"`
	UpdatedAt time.Time
}

func (appState) TableName() string {
	return "app_state"
}

// GormStore is an Adapter backed by a relational database (sqlite or
// mysql) through GORM.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&appState{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (gs *GormStore) Load(key string) ([]byte, bool, error) {
	var row appState
	err := gs.db.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.Value, true, nil
}

func (gs *GormStore) Save(key string, data []byte) error {
	row := appState{Key: key, Value: data, UpdatedAt: time.Now()}
	return gs.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

func (gs *GormStore) Delete(key string) error {
	return gs.db.Delete(&appState{}, "key = ?", key).Error
}
