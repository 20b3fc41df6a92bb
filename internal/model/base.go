package model

import (
	"time"

	"github.com/google/uuid"
)

// KVEntry 数据库后端中保存路线图集合的单行记录
// swagger:model
type KVEntry struct {
	Key       string    `gorm:"primaryKey;type:varchar(191)" json:"key"`
	Value     string    `gorm:"type:longtext" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

func GenerateUUID() string {
	return uuid.New().String()
}
