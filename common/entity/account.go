package entity

import "time"

// Account 顾客账号表
type Account struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex:uk_email;not null"`
	Phone     string    `gorm:"column:phone;type:varchar(32)"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (Account) TableName() string {
	return "accounts"
}
