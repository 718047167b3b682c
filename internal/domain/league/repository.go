package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, l League) error
	GetByName(ctx context.Context, name string) (League, bool, error)
	List(ctx context.Context) ([]League, error)
}
