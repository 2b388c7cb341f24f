package store

import "context"

// Store loads and saves the full application state.
type Store interface {
	// Load returns the persisted state, or a fresh empty state when nothing
	// has been saved yet.
	Load(ctx context.Context) (*State, error)
	// Save persists the state, replacing whatever was saved before.
	Save(ctx context.Context, state *State) error
	// Close releases any backend resources.
	Close()
}
