package domain

import "context"

type BloomRepository interface {
	// Add puts an id into the filter.
	Add(ctx context.Context, id string) error

	// Exists checks whether the id may exist.
	// true: possibly present (check the database to be sure).
	// false: definitely absent (safe to return 404 directly).
	Exists(ctx context.Context, id string) (bool, error)

	// BulkAdd loads many ids at once.
	BulkAdd(ctx context.Context, ids []string) error
}
