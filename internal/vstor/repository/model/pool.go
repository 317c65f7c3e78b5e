package model

import (
	"time"
)

// Pool 存储池表
type Pool struct {
	Name      string    `gorm:"primaryKey;type:text;column:name" json:"name"`
	Disks     string    `gorm:"type:text;not null;column:disks" json:"disks"` // 逗号分隔的磁盘 URI 列表
	State     string    `gorm:"type:text;not null;column:state" json:"state"` // ONLINE
	Capacity  uint64    `gorm:"type:integer;not null;column:capacity" json:"capacity"`
	Used      uint64    `gorm:"type:integer;not null;column:used" json:"used"`
	CreatedAt time.Time `gorm:"type:datetime;not null;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:datetime;not null;column:updated_at" json:"updated_at"`
}

// TableName 指定表名
func (Pool) TableName() string {
	return "pools"
}
