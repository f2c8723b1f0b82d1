package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/matchbook/core"
	"github.com/poiesic/matchbook/storage"
)

// ProfileRepository implements storage.ProfileRepository for BadgerDB.
type ProfileRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(backend *Backend) (storage.ProfileRepository, error) {
	idSeq, err := backend.GetSequence(profileIDSeq)
	if err != nil {
		return nil, err
	}

	return &ProfileRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ProfileRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *ProfileRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddProfiles adds one or more profiles to storage.
func (r *ProfileRepository) AddProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, profile := range profiles {
			if profile.Id == 0 {
				nextID, err := r.idSeq.Next()
				if err != nil {
					return err
				}
				// BadgerDB sequences can return 0 on first call, so we skip it
				if nextID == 0 {
					nextID, err = r.idSeq.Next()
					if err != nil {
						return err
					}
				}
				profile.Id = core.ID(nextID)
			}

			// Names are unique
			nameKey := makeProfileNameKey(profile.Name)
			if _, err := tx.Get(nameKey); err == nil {
				return storage.ErrDuplicateKey
			} else if err != badger.ErrKeyNotFound {
				return err
			}

			// Truncate to the serialized precision so the returned
			// profiles compare equal to what a later read yields.
			profile.InsertedAt = time.Now().UTC().Truncate(time.Microsecond)
			profile.UpdatedAt = profile.InsertedAt

			key := makeProfileKey(profile.Id)
			if err := tx.Set(key, storage.MarshalProfile(profile)); err != nil {
				return err
			}

			if err := tx.Set(nameKey, storage.MarshalID(profile.Id)); err != nil {
				return err
			}

			roleKey := makeProfileRoleKey(profile.Role, profile.Id)
			if err := tx.Set(roleKey, storage.MarshalID(profile.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return profiles, err
}

// UpdateProfiles updates existing profiles.
func (r *ProfileRepository) UpdateProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, profile := range profiles {
			key := makeProfileKey(profile.Id)

			old, err := r.readProfile(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			profile.InsertedAt = old.InsertedAt
			profile.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

			if err := tx.Set(key, storage.MarshalProfile(profile)); err != nil {
				return err
			}

			// Update name index if the name changed
			if old.Name != profile.Name {
				newNameKey := makeProfileNameKey(profile.Name)
				if _, err := tx.Get(newNameKey); err == nil {
					return storage.ErrDuplicateKey
				} else if err != badger.ErrKeyNotFound {
					return err
				}
				if err := tx.Delete(makeProfileNameKey(old.Name)); err != nil {
					return err
				}
				if err := tx.Set(newNameKey, storage.MarshalID(profile.Id)); err != nil {
					return err
				}
			}

			// Update role index if the role changed
			if old.Role != profile.Role {
				if err := tx.Delete(makeProfileRoleKey(old.Role, old.Id)); err != nil {
					return err
				}
				if err := tx.Set(makeProfileRoleKey(profile.Role, profile.Id), storage.MarshalID(profile.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return profiles, err
}

// DeleteProfiles removes profiles by their IDs.
func (r *ProfileRepository) DeleteProfiles(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeProfileKey(id)

			profile, err := r.readProfile(tx, key)
			if err != nil {
				return err
			}
			if profile == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(makeProfileNameKey(profile.Name)); err != nil {
				return err
			}
			if err := tx.Delete(makeProfileRoleKey(profile.Role, profile.Id)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetProfile retrieves a single profile by ID.
func (r *ProfileRepository) GetProfile(ctx context.Context, id core.ID) (*core.Profile, error) {
	var result *core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readProfile(tx, makeProfileKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetProfiles retrieves multiple profiles by their IDs.
func (r *ProfileRepository) GetProfiles(ctx context.Context, ids ...core.ID) ([]*core.Profile, error) {
	var result []*core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			profile, err := r.readProfile(tx, makeProfileKey(id))
			if err != nil {
				return err
			}
			if profile != nil {
				result = append(result, profile)
			}
		}
		return nil
	}, false)
	return result, err
}

// ListProfiles retrieves profiles in insertion-ID order.
func (r *ProfileRepository) ListProfiles(ctx context.Context, role core.Role, offset, limit int) ([]*core.Profile, error) {
	if offset < 0 {
		return nil, storage.ErrInvalidQuery
	}
	if role == 0 {
		return r.listAll(offset, limit)
	}
	return r.listByRole(role, offset, limit)
}

func (r *ProfileRepository) listAll(offset, limit int) ([]*core.Profile, error) {
	var results []*core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := []byte(profilePrefix + ":")
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		skipped := 0
		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			if skipped < offset {
				skipped++
				continue
			}
			if limit > 0 && len(results) >= limit {
				break
			}

			var profile *core.Profile
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				profile, err = storage.UnmarshalProfile(val)
				return err
			}); err != nil {
				return err
			}
			results = append(results, profile)
		}
		return nil
	}, false)
	return results, err
}

func (r *ProfileRepository) listByRole(role core.Role, offset, limit int) ([]*core.Profile, error) {
	var results []*core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialProfileRoleKey(role)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		skipped := 0
		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			if skipped < offset {
				skipped++
				continue
			}
			if limit > 0 && len(results) >= limit {
				break
			}

			var id core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			profile, err := r.readProfile(tx, makeProfileKey(id))
			if err != nil {
				return err
			}
			if profile != nil {
				results = append(results, profile)
			}
		}
		return nil
	}, false)
	return results, err
}

// FindProfileByName finds a profile by its exact name.
func (r *ProfileRepository) FindProfileByName(ctx context.Context, name string) (*core.Profile, error) {
	var result *core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeProfileNameKey(name))
		if err == badger.ErrKeyNotFound {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}

		var id core.ID
		if err := item.Value(func(val []byte) error {
			var err error
			id, err = storage.UnmarshalID(val)
			return err
		}); err != nil {
			return err
		}

		result, err = r.readProfile(tx, makeProfileKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// CountProfiles returns the number of stored profiles.
func (r *ProfileRepository) CountProfiles(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := []byte(profilePrefix + ":")
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false

		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readProfile reads and unmarshals a profile, returning nil if the key
// does not exist.
func (r *ProfileRepository) readProfile(tx *badger.Txn, key []byte) (*core.Profile, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile *core.Profile
	if err := item.Value(func(val []byte) error {
		var err error
		profile, err = storage.UnmarshalProfile(val)
		return err
	}); err != nil {
		return nil, err
	}
	return profile, nil
}
