package model

import (
	"time"
)

// Nexus 复合卷表
type Nexus struct {
	UUID      string    `gorm:"primaryKey;type:text;column:uuid" json:"uuid"`
	Size      uint64    `gorm:"type:integer;not null;column:size" json:"size"`
	State     string    `gorm:"type:text;not null;column:state" json:"state"` // ONLINE
	DeviceURI string    `gorm:"type:text;column:device_uri" json:"device_uri"`
	CreatedAt time.Time `gorm:"type:datetime;not null;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:datetime;not null;column:updated_at" json:"updated_at"`
}

// TableName 指定表名
func (Nexus) TableName() string {
	return "nexus"
}

// NexusChild nexus 的 child 表
// child 由所属 nexus 独占，随 nexus 一起销毁
type NexusChild struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	NexusUUID       string    `gorm:"type:text;not null;index:idx_nexus_children_nexus_uuid;column:nexus_uuid" json:"nexus_uuid"`
	URI             string    `gorm:"type:text;not null;column:uri" json:"uri"`
	State           string    `gorm:"type:text;not null;column:state" json:"state"` // ONLINE, DEGRADED
	RebuildProgress int       `gorm:"type:integer;default:0;column:rebuild_progress" json:"rebuild_progress"`
	CreatedAt       time.Time `gorm:"type:datetime;not null;column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"type:datetime;not null;column:updated_at" json:"updated_at"`
}

// TableName 指定表名
func (NexusChild) TableName() string {
	return "nexus_children"
}
