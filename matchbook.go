// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package matchbook is a compatibility matching engine for business
// profiles. It stores profiles in an embedded BadgerDB database and
// ranks them against each other across four dimensions: what one side
// sells against what the other needs (in both directions), shared
// partnership sectors, and shared interest tags.
package matchbook

import (
	"log/slog"

	"github.com/poiesic/matchbook/match"
	"github.com/poiesic/matchbook/matchmaking"
	"github.com/poiesic/matchbook/storage"
	"github.com/poiesic/matchbook/storage/badger"
)

type Database struct {
	backend     *badger.Backend
	profileRepo storage.ProfileRepository
	matcher     *match.Matcher
	logger      *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	matchConfig *match.Config
}

// WithMatchConfig overrides the matching engine configuration.
func WithMatchConfig(cfg *match.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.matchConfig = cfg
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		matchConfig: match.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create profile repository
	profileRepo, err := badger.NewProfileRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create matcher with configured settings
	matcher, err := match.New(match.WithConfig(options.matchConfig))
	if err != nil {
		profileRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:     backend,
		profileRepo: profileRepo,
		matcher:     matcher,
		logger:      slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	// Close repositories
	if err := db.profileRepo.Close(); err != nil {
		db.logger.Error("error closing profile repository", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) ProfileRepository() storage.ProfileRepository {
	return db.profileRepo
}

// Matcher returns the shared matching engine.
func (db *Database) Matcher() *match.Matcher {
	return db.matcher
}

func (db *Database) NewMatchmaker(opts ...matchmaking.Option) (*matchmaking.Matchmaker, error) {
	opts = append([]matchmaking.Option{matchmaking.WithMatcher(db.matcher)}, opts...)
	return matchmaking.NewMatchmaker(db.profileRepo, opts...)
}
