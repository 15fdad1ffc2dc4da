package model

import "time"

type Reply struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);not null;index"`
	Owner     string    `gorm:"column:owner;type:varchar(50);not null"`
	Content   string    `gorm:"type:text;not null"`
	IsDeleted bool      `gorm:"column:is_deleted;not null;default:false"`
	CreatedAt time.Time `gorm:"type:datetime(6)"`
}

func (Reply) TableName() string {
	return "replies"
}
