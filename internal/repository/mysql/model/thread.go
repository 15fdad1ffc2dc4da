package model

import "time"

type Thread struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	Owner     string    `gorm:"column:owner;type:varchar(50);not null"`
	CreatedAt time.Time `gorm:"type:datetime(6)"`
}

func (Thread) TableName() string {
	return "threads"
}
