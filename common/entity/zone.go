package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Zone 配送区域表
type Zone struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name      string         `gorm:"column:name;type:varchar(128);not null;uniqueIndex:uk_name"`
	Countries datatypes.JSON `gorm:"column:countries;type:json;not null"`
	Active    bool           `gorm:"column:active;not null;default:true"`
	CreatedAt time.Time      `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (Zone) TableName() string {
	return "zones"
}
