package mysql

import "github.com/google/uuid"

// IDGenerator produces the random part of a row id; repositories prefix it
// with the entity kind ("thread-", "comment-", ...). Injected so tests can
// pin ids.
type IDGenerator func() string

func DefaultIDGenerator() string {
	return uuid.NewString()
}
