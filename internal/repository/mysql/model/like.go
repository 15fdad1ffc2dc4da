package model

import "time"

// Like is existence-only; the (comment_id, owner) unique key is what keeps
// concurrent toggles from double-counting.
type Like struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);not null;uniqueIndex:idx_likes_comment_owner"`
	Owner     string    `gorm:"column:owner;type:varchar(50);not null;uniqueIndex:idx_likes_comment_owner"`
	CreatedAt time.Time `gorm:"type:datetime(6)"`
}

func (Like) TableName() string {
	return "likes"
}
