package mysql

import (
	"context"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

// Comments without likes don't appear in the group-by result; the view layer
// fills in the zeros.
const queryLikesByThread = `SELECT comments.id AS comment_id, COUNT(likes.id) AS likes FROM comments JOIN likes ON likes.comment_id = comments.id WHERE comments.thread_id = ? GROUP BY comments.id`

type likeRepository struct {
	DB    *gorm.DB
	idGen IDGenerator
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB, idGen IDGenerator) *likeRepository {
	return &likeRepository{
		DB:    db,
		idGen: idGen,
	}
}

func (r *likeRepository) AddLike(ctx context.Context, l domain.Like) error {
	record := model.Like{
		ID:        "like-" + r.idGen(),
		CommentID: l.CommentID,
		Owner:     l.Owner,
		CreatedAt: time.Now(),
	}
	return r.DB.WithContext(ctx).Create(&record).Error
}

func (r *likeRepository) DeleteLike(ctx context.Context, l domain.Like) error {
	return r.DB.WithContext(ctx).Where("comment_id = ? AND owner = ?", l.CommentID, l.Owner).Delete(&model.Like{}).Error
}

func (r *likeRepository) IsLiked(ctx context.Context, l domain.Like) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Like{}).Where("comment_id = ? AND owner = ?", l.CommentID, l.Owner).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type likeCountRow struct {
	CommentID string
	Likes     int64
}

func (r *likeRepository) GetLikesByThreadID(ctx context.Context, threadID string) ([]domain.LikeCount, error) {
	var rows []likeCountRow
	err := r.DB.WithContext(ctx).Raw(queryLikesByThread, threadID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.LikeCount, len(rows))
	for i, row := range rows {
		res[i] = domain.LikeCount{
			CommentID: row.CommentID,
			Likes:     strconv.FormatInt(row.Likes, 10),
		}
	}
	return res, nil
}
