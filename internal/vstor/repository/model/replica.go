package model

import (
	"time"
)

// Replica 副本表
type Replica struct {
	UUID      string    `gorm:"primaryKey;type:text;column:uuid" json:"uuid"`
	Pool      string    `gorm:"type:text;not null;index:idx_replicas_pool;column:pool" json:"pool"`
	Size      uint64    `gorm:"type:integer;not null;column:size" json:"size"`
	Thin      bool      `gorm:"type:boolean;default:0;column:thin" json:"thin"`
	Share     string    `gorm:"type:text;not null;column:share" json:"share"` // NONE, NVMF, ISCSI
	URI       string    `gorm:"type:text;not null;column:uri" json:"uri"`
	CreatedAt time.Time `gorm:"type:datetime;not null;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:datetime;not null;column:updated_at" json:"updated_at"`
}

// TableName 指定表名
func (Replica) TableName() string {
	return "replicas"
}
