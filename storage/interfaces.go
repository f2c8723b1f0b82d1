package storage

import (
	"context"

	"github.com/poiesic/matchbook/core"
)

// ProfileRepository provides operations for managing member profiles.
// Implementations must be thread-safe and support concurrent access.
type ProfileRepository interface {
	// AddProfiles adds one or more profiles to storage.
	// For profiles with ID=0, generates new IDs from sequence.
	// Sets InsertedAt/UpdatedAt timestamps.
	// Returns ErrDuplicateKey if a profile name is already taken.
	// Returns the profiles with generated IDs and timestamps populated.
	AddProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error)

	// UpdateProfiles updates existing profiles.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any profile doesn't exist.
	UpdateProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error)

	// DeleteProfiles removes profiles by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any profile doesn't exist.
	DeleteProfiles(ctx context.Context, ids ...core.ID) error

	// GetProfile retrieves a single profile by ID.
	// Returns ErrNotFound if the profile doesn't exist.
	GetProfile(ctx context.Context, id core.ID) (*core.Profile, error)

	// GetProfiles retrieves multiple profiles by their IDs.
	// Returns only the profiles that exist (no error for missing profiles).
	GetProfiles(ctx context.Context, ids ...core.ID) ([]*core.Profile, error)

	// ListProfiles retrieves profiles in insertion-ID order, which makes
	// pagination deterministic. A zero role lists every profile;
	// otherwise only profiles with the given role are returned.
	// offset skips that many matching profiles; limit <= 0 means no limit.
	ListProfiles(ctx context.Context, role core.Role, offset, limit int) ([]*core.Profile, error)

	// FindProfileByName finds a profile by its exact name.
	// Returns ErrNotFound if no matching profile exists.
	FindProfileByName(ctx context.Context, name string) (*core.Profile, error)

	// CountProfiles returns the number of stored profiles.
	CountProfiles(ctx context.Context) (int, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the repository and releases resources.
	Close() error
}
