package repository

import (
	"context"
	"errors"
	"time"

	"skillmap_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBlobRepository 将键值保存在 kv_entries 表中
type GormBlobRepository struct {
	DB *gorm.DB
}

func NewGormBlobRepository(db *gorm.DB) *GormBlobRepository {
	return &GormBlobRepository{DB: db}
}

func (r *GormBlobRepository) Get(ctx context.Context, key string) (string, error) {
	var entry model.KVEntry
	err := r.DB.WithContext(ctx).Where(&model.KVEntry{Key: key}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrBlobNotFound
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

func (r *GormBlobRepository) Set(ctx context.Context, key, value string) error {
	entry := model.KVEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
