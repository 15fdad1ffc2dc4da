package mysql

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

func TestCommentRepository_GetCommentsByThreadID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db, DefaultIDGenerator)

	first := time.Date(2021, 8, 8, 7, 22, 33, 0, time.UTC)
	second := time.Date(2021, 8, 8, 7, 26, 21, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "content", "created_at", "is_deleted", "username"}).
		AddRow("comment-1", "sebuah comment", first, false, "johndoe").
		AddRow("comment-2", "komentar lama", second, true, "dicoding")
	mock.ExpectQuery(regexp.QuoteMeta(queryCommentsByThread)).WithArgs("thread-123").WillReturnRows(rows)

	got, err := repo.GetCommentsByThreadID(context.Background(), "thread-123")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.Comment{
		ID:       "comment-1",
		Username: "johndoe",
		Date:     first.Format(time.RFC3339),
		Content:  "sebuah comment",
	}, got[0])
	// deleted rows come back as-is, content untouched
	assert.True(t, got[1].IsDeleted)
	assert.Equal(t, "komentar lama", got[1].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_VerifyCommentAvailability(t *testing.T) {
	countQuery := regexp.QuoteMeta("SELECT count(*) FROM `comments` WHERE id = ? AND is_deleted = ?")

	t.Run("live comment", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db, DefaultIDGenerator)

		mock.ExpectQuery(countQuery).WithArgs("comment-123", false).
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

		assert.NoError(t, repo.VerifyCommentAvailability(context.Background(), "comment-123"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("soft-deleted comment counts as gone", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db, DefaultIDGenerator)

		mock.ExpectQuery(countQuery).WithArgs("comment-123", false).
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

		err := repo.VerifyCommentAvailability(context.Background(), "comment-123")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentRepository_VerifyCommentOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db, DefaultIDGenerator)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `comments` WHERE id = ? AND owner = ?")).
		WithArgs("comment-123", "user-456").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	err := repo.VerifyCommentOwner(context.Background(), "comment-123", "user-456")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_DeleteComment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db, DefaultIDGenerator)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `comments` SET `is_deleted`=? WHERE id = ?")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteComment(context.Background(), "comment-123")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_AddComment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db, staticIDGen("123"))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `comments`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	added, err := repo.AddComment(context.Background(), domain.NewComment{
		Content:  "sebuah comment",
		Owner:    "user-123",
		ThreadID: "thread-123",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.AddedComment{ID: "comment-123", Content: "sebuah comment", Owner: "user-123"}, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}
