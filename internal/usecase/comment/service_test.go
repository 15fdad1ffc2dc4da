package comment

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// --- Mocks ---

type mockCommentRepo struct {
	addCommentFunc         func(ctx context.Context, c domain.NewComment) (domain.AddedComment, error)
	verifyAvailabilityFunc func(ctx context.Context, id string) error
	verifyOwnerFunc        func(ctx context.Context, id, owner string) error

	mu            sync.Mutex
	deletedIDs    []string
	ownerChecked  bool
}

func (m *mockCommentRepo) AddComment(ctx context.Context, c domain.NewComment) (domain.AddedComment, error) {
	if m.addCommentFunc != nil {
		return m.addCommentFunc(ctx, c)
	}
	return domain.AddedComment{ID: "comment-123", Content: c.Content, Owner: c.Owner}, nil
}

func (m *mockCommentRepo) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.Comment, error) {
	return nil, nil
}

func (m *mockCommentRepo) VerifyCommentAvailability(ctx context.Context, id string) error {
	if m.verifyAvailabilityFunc != nil {
		return m.verifyAvailabilityFunc(ctx, id)
	}
	return nil
}

func (m *mockCommentRepo) VerifyCommentOwner(ctx context.Context, id, owner string) error {
	m.mu.Lock()
	m.ownerChecked = true
	m.mu.Unlock()
	if m.verifyOwnerFunc != nil {
		return m.verifyOwnerFunc(ctx, id, owner)
	}
	return nil
}

func (m *mockCommentRepo) DeleteComment(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

type mockThreadRepo struct {
	verifyAvailabilityFunc func(ctx context.Context, id string) error
}

func (m *mockThreadRepo) AddThread(ctx context.Context, t domain.NewThread) (domain.AddedThread, error) {
	return domain.AddedThread{}, nil
}

func (m *mockThreadRepo) GetThreadByID(ctx context.Context, id string) (domain.DetailThread, error) {
	return domain.DetailThread{}, nil
}

func (m *mockThreadRepo) VerifyThreadAvailability(ctx context.Context, id string) error {
	if m.verifyAvailabilityFunc != nil {
		return m.verifyAvailabilityFunc(ctx, id)
	}
	return nil
}

func (m *mockThreadRepo) GetThreadIDs(ctx context.Context) ([]string, error) { return nil, nil }

type mockLikeRepo struct {
	isLikedFunc func(ctx context.Context, l domain.Like) (bool, error)

	mu      sync.Mutex
	added   []domain.Like
	deleted []domain.Like
}

func (m *mockLikeRepo) AddLike(ctx context.Context, l domain.Like) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.added = append(m.added, l)
	return nil
}

func (m *mockLikeRepo) DeleteLike(ctx context.Context, l domain.Like) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, l)
	return nil
}

func (m *mockLikeRepo) IsLiked(ctx context.Context, l domain.Like) (bool, error) {
	if m.isLikedFunc != nil {
		return m.isLikedFunc(ctx, l)
	}
	return false, nil
}

func (m *mockLikeRepo) GetLikesByThreadID(ctx context.Context, threadID string) ([]domain.LikeCount, error) {
	return nil, nil
}

type mockBloom struct {
	existsFunc func(ctx context.Context, id string) (bool, error)
}

func (m *mockBloom) Add(ctx context.Context, id string) error { return nil }
func (m *mockBloom) Exists(ctx context.Context, id string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, id)
	}
	return true, nil
}
func (m *mockBloom) BulkAdd(ctx context.Context, ids []string) error { return nil }

type mockInvalidator struct {
	mu   sync.Mutex
	sent []string
}

func (m *mockInvalidator) Start(ctx context.Context) {}
func (m *mockInvalidator) Send(threadID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, threadID)
}

func newTestService() (*service, *mockCommentRepo, *mockThreadRepo, *mockLikeRepo, *mockBloom, *mockInvalidator) {
	cr := &mockCommentRepo{}
	tr := &mockThreadRepo{}
	lr := &mockLikeRepo{}
	bloom := &mockBloom{}
	inv := &mockInvalidator{}
	return NewService(cr, tr, lr, bloom, inv), cr, tr, lr, bloom, inv
}

// --- Tests ---

func TestAddComment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, _, _, _, _, inv := newTestService()

		added, err := svc.AddComment(context.Background(), domain.Payload{
			"content":  "sebuah comment",
			"owner":    "user-123",
			"threadId": "thread-123",
		})

		require.NoError(t, err)
		assert.Equal(t, "comment-123", added.ID)
		assert.Equal(t, []string{"thread-123"}, inv.sent)
	})

	t.Run("invalid payload", func(t *testing.T) {
		svc, _, _, _, _, _ := newTestService()

		_, err := svc.AddComment(context.Background(), domain.Payload{"content": "sebuah comment"})
		assert.EqualError(t, err, "NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	})

	t.Run("missing thread", func(t *testing.T) {
		svc, cr, tr, _, _, inv := newTestService()
		tr.verifyAvailabilityFunc = func(ctx context.Context, id string) error {
			return domain.ErrNotFound
		}
		cr.addCommentFunc = func(ctx context.Context, c domain.NewComment) (domain.AddedComment, error) {
			t.Fatal("AddComment should not be called")
			return domain.AddedComment{}, nil
		}

		_, err := svc.AddComment(context.Background(), domain.Payload{
			"content":  "sebuah comment",
			"owner":    "user-123",
			"threadId": "thread-xxx",
		})

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, inv.sent)
	})

	t.Run("bloom filter rejects unknown thread before the database", func(t *testing.T) {
		svc, _, tr, _, bloom, _ := newTestService()
		bloom.existsFunc = func(ctx context.Context, id string) (bool, error) {
			return false, nil
		}
		tr.verifyAvailabilityFunc = func(ctx context.Context, id string) error {
			t.Error("VerifyThreadAvailability should not be called")
			return nil
		}

		_, err := svc.AddComment(context.Background(), domain.Payload{
			"content":  "sebuah comment",
			"owner":    "user-123",
			"threadId": "thread-xxx",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDeleteComment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, cr, _, _, _, inv := newTestService()

		err := svc.DeleteComment(context.Background(), "thread-123", "comment-123", "user-123")

		require.NoError(t, err)
		assert.Equal(t, []string{"comment-123"}, cr.deletedIDs)
		assert.Equal(t, []string{"thread-123"}, inv.sent)
	})

	t.Run("missing comment reports not found before ownership", func(t *testing.T) {
		svc, cr, _, _, _, _ := newTestService()
		cr.verifyAvailabilityFunc = func(ctx context.Context, id string) error {
			return domain.ErrNotFound
		}

		err := svc.DeleteComment(context.Background(), "thread-123", "comment-xxx", "user-123")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.False(t, cr.ownerChecked)
		assert.Empty(t, cr.deletedIDs)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		svc, cr, _, _, _, inv := newTestService()
		cr.verifyOwnerFunc = func(ctx context.Context, id, owner string) error {
			return domain.ErrForbidden
		}

		err := svc.DeleteComment(context.Background(), "thread-123", "comment-123", "user-456")

		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Empty(t, cr.deletedIDs)
		assert.Empty(t, inv.sent)
	})

	t.Run("missing thread checked first", func(t *testing.T) {
		svc, cr, tr, _, _, _ := newTestService()
		tr.verifyAvailabilityFunc = func(ctx context.Context, id string) error {
			return domain.ErrNotFound
		}
		cr.verifyAvailabilityFunc = func(ctx context.Context, id string) error {
			t.Error("VerifyCommentAvailability should not be called")
			return nil
		}

		err := svc.DeleteComment(context.Background(), "thread-xxx", "comment-123", "user-123")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestLikeUnlikeComment(t *testing.T) {
	t.Run("not yet liked gets liked", func(t *testing.T) {
		svc, _, _, lr, _, inv := newTestService()

		err := svc.LikeUnlikeComment(context.Background(), "thread-123", "comment-123", "user-123")

		require.NoError(t, err)
		assert.Equal(t, []domain.Like{{CommentID: "comment-123", Owner: "user-123"}}, lr.added)
		assert.Empty(t, lr.deleted)
		assert.Equal(t, []string{"thread-123"}, inv.sent)
	})

	t.Run("already liked gets unliked", func(t *testing.T) {
		svc, _, _, lr, _, _ := newTestService()
		lr.isLikedFunc = func(ctx context.Context, l domain.Like) (bool, error) {
			return true, nil
		}

		err := svc.LikeUnlikeComment(context.Background(), "thread-123", "comment-123", "user-123")

		require.NoError(t, err)
		assert.Empty(t, lr.added)
		assert.Equal(t, []domain.Like{{CommentID: "comment-123", Owner: "user-123"}}, lr.deleted)
	})

	t.Run("deleted comment cannot be liked", func(t *testing.T) {
		svc, cr, _, lr, _, _ := newTestService()
		cr.verifyAvailabilityFunc = func(ctx context.Context, id string) error {
			return domain.ErrNotFound
		}

		err := svc.LikeUnlikeComment(context.Background(), "thread-123", "comment-123", "user-123")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, lr.added)
	})

	t.Run("state read failure aborts the toggle", func(t *testing.T) {
		svc, _, _, lr, _, inv := newTestService()
		boom := errors.New("boom")
		lr.isLikedFunc = func(ctx context.Context, l domain.Like) (bool, error) {
			return false, boom
		}

		err := svc.LikeUnlikeComment(context.Background(), "thread-123", "comment-123", "user-123")

		assert.ErrorIs(t, err, boom)
		assert.Empty(t, lr.added)
		assert.Empty(t, inv.sent)
	})
}
