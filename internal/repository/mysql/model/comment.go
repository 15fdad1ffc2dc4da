package model

import "time"

type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	ThreadID  string    `gorm:"column:thread_id;type:varchar(50);not null;index"`
	Owner     string    `gorm:"column:owner;type:varchar(50);not null"`
	Content   string    `gorm:"type:text;not null"`
	IsDeleted bool      `gorm:"column:is_deleted;not null;default:false"`
	CreatedAt time.Time `gorm:"type:datetime(6)"`
}

func (Comment) TableName() string {
	return "comments"
}
