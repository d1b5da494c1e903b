package repository

import "context"

// SequenceRepository hands out invoice sequence numbers. Next must be atomic
// and strictly monotonic per (user, year), also under concurrent creation.
type SequenceRepository interface {
	Next(ctx context.Context, userID string, year int) (int64, error)
}
