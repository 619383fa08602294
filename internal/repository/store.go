package repository

import "context"

// Store is the local cache backing the market repository
type Store interface {
	Item
	Listing
	Ping(ctx context.Context) error
	Close() error
}
