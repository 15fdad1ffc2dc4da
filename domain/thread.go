package domain

import "context"

// NewThread is the validated payload for creating a thread.
type NewThread struct {
	Title string
	Body  string
	Owner string
}

// ParseNewThread verifies the raw payload and builds a NewThread.
// Presence of every required property is checked before any type.
func ParseNewThread(p Payload) (NewThread, error) {
	const entity = "NEW_THREAD"

	for _, key := range []string{"title", "body", "owner"} {
		if !p.has(key) {
			return NewThread{}, errMissingProperty(entity)
		}
	}

	title, okTitle := p.str("title")
	body, okBody := p.str("body")
	owner, okOwner := p.str("owner")
	if !okTitle || !okBody || !okOwner {
		return NewThread{}, errWrongDataType(entity)
	}

	return NewThread{Title: title, Body: body, Owner: owner}, nil
}

// AddedThread is the persisted result of a thread creation.
type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThread(id, title, owner string) (AddedThread, error) {
	if id == "" || title == "" || owner == "" {
		return AddedThread{}, errMissingProperty("ADDED_THREAD")
	}
	return AddedThread{ID: id, Title: title, Owner: owner}, nil
}

// DetailThread is the denormalized detail view of a thread: its own metadata
// plus the fully transformed comment tree.
type DetailThread struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"`
	Username string          `json:"username"`
	Comments []DetailComment `json:"comments"`
}

func NewDetailThread(id, title, body, username, date string, comments []DetailComment) (DetailThread, error) {
	if id == "" || title == "" || body == "" || username == "" || date == "" {
		return DetailThread{}, errMissingProperty("DETAIL_THREAD")
	}
	if comments == nil {
		comments = []DetailComment{}
	}
	return DetailThread{
		ID:       id,
		Title:    title,
		Body:     body,
		Date:     date,
		Username: username,
		Comments: comments,
	}, nil
}

// ThreadRepository defines the contract for thread persistence.
type ThreadRepository interface {
	// AddThread persists a new thread and returns its stored projection.
	AddThread(ctx context.Context, t NewThread) (AddedThread, error)

	// GetThreadByID retrieves the thread metadata with the owner username
	// joined in. Comments are left empty; the usecase assembles them.
	// Returns ErrNotFound if the thread doesn't exist.
	GetThreadByID(ctx context.Context, id string) (DetailThread, error)

	// VerifyThreadAvailability returns ErrNotFound if the thread doesn't exist.
	VerifyThreadAvailability(ctx context.Context, id string) error

	// GetThreadIDs lists every thread id, used to warm the bloom filter.
	GetThreadIDs(ctx context.Context) ([]string, error)
}

// ThreadUsecase defines the business logic contract for threads.
type ThreadUsecase interface {
	// AddThread validates the payload and persists the thread.
	AddThread(ctx context.Context, payload Payload) (AddedThread, error)

	// GetThreadDetail assembles the full detail view of a thread: metadata,
	// comments with like counts, and nested replies, with soft-deleted
	// content redacted. Returns ErrNotFound if the thread doesn't exist.
	GetThreadDetail(ctx context.Context, threadID string) (DetailThread, error)

	// InitBloomFilter loads every existing thread id into the bloom filter.
	InitBloomFilter(ctx context.Context) error
}
