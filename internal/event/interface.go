package event

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Create inserts exactly one event into the configured calendar.
	// Identical inputs are not deduplicated.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Delete(ctx context.Context, input DeleteInput) error
}
