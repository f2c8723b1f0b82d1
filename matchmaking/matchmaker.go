package matchmaking

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/matchbook/core"
	"github.com/poiesic/matchbook/match"
	"github.com/poiesic/matchbook/storage"
)

// Matchmaker ranks stored profiles against a subject profile.
// Candidates are paged out of the repository and scored concurrently.
type Matchmaker struct {
	profiles      storage.ProfileRepository
	matcher       *match.Matcher
	pool          *ants.Pool
	candidateRole core.Role
	pageSize      int
	logger        *slog.Logger
}

// Option configures a Matchmaker.
type Option func(*Matchmaker) error

// WithMatcher sets a custom matcher.
// Default is a matcher with the default configuration.
func WithMatcher(matcher *match.Matcher) Option {
	return func(m *Matchmaker) error {
		if matcher == nil {
			return ErrMatcherRequired
		}
		m.matcher = matcher
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(m *Matchmaker) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if m.pool != nil {
			m.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		m.pool = pool
		return nil
	}
}

// WithCandidateRole sets the role candidates are drawn from.
// Default is core.RoleMember. A zero role considers all profiles.
func WithCandidateRole(role core.Role) Option {
	return func(m *Matchmaker) error {
		m.candidateRole = role
		return nil
	}
}

// WithPageSize sets how many candidates are fetched per repository page.
// Default is 256.
func WithPageSize(size int) Option {
	return func(m *Matchmaker) error {
		if size < 1 {
			size = 1
		}
		m.pageSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matchmaker) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewMatchmaker creates a new matchmaker over the given repository.
func NewMatchmaker(profiles storage.ProfileRepository, opts ...Option) (*Matchmaker, error) {
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}

	matcher, err := match.New()
	if err != nil {
		return nil, err
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	// Create matchmaker with defaults
	m := &Matchmaker{
		profiles:      profiles,
		matcher:       matcher,
		pool:          pool,
		candidateRole: core.RoleMember,
		pageSize:      256,
		logger:        slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(m); optErr != nil {
			m.Release()
			return nil, optErr
		}
	}

	return m, nil
}

// FindMatches ranks all candidate profiles against the subject.
// Returns up to maxHits results ordered by score descending; a maxHits
// of zero or less returns every match.
func (m *Matchmaker) FindMatches(ctx context.Context, subjectID core.ID, maxHits int) ([]*core.MatchResult, error) {
	return m.FindMatchesWithMonitor(ctx, subjectID, maxHits, nil)
}

// FindMatchesWithMonitor ranks all candidate profiles against the
// subject with monitoring. The monitor receives callbacks at each stage
// of the matchmaking process; Scored is called once per candidate that
// produced any match at all.
func (m *Matchmaker) FindMatchesWithMonitor(ctx context.Context, subjectID core.ID, maxHits int, monitor MatchMonitor) ([]*core.MatchResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	subject, err := m.profiles.GetProfile(ctx, subjectID)
	if err != nil {
		m.logger.Error("error loading subject profile", "id", subjectID, "err", err)
		return nil, err
	}

	monitor.Start(subject)

	// Subject token sets are computed once and reused for every candidate.
	ranking := m.matcher.NewRanking(subject)

	var scored []*core.MatchResult
	offset := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidates, err := m.profiles.ListProfiles(ctx, m.candidateRole, offset, m.pageSize)
		if err != nil {
			m.logger.Error("error listing candidate profiles", "offset", offset, "err", err)
			return nil, err
		}
		if len(candidates) == 0 {
			break
		}

		monitor.AfterCandidateFetch(candidates)
		scored = append(scored, m.scorePage(ranking, candidates, monitor)...)

		if len(candidates) < m.pageSize {
			break
		}
		offset += len(candidates)
	}

	ranked := match.SortResults(scored)
	if maxHits > 0 && len(ranked) > maxHits {
		ranked = ranked[:maxHits]
	}

	m.logger.Debug("matchmaking finished",
		"subject", subject.Name, "scored", len(scored), "matches", len(ranked))

	monitor.Finish(ranked)
	return ranked, nil
}

// scorePage scores one page of candidates on the worker pool. Results
// keep the candidates' slice order so equal scores rank deterministically.
func (m *Matchmaker) scorePage(ranking *match.Ranking, candidates []*core.Profile, monitor MatchMonitor) []*core.MatchResult {
	results := make([]*core.MatchResult, len(candidates))

	var wg sync.WaitGroup
	for i, candidate := range candidates {
		i, candidate := i, candidate
		wg.Add(1)
		if err := m.pool.Submit(func() {
			defer wg.Done()
			results[i] = ranking.Score(candidate)
		}); err != nil {
			// Pool rejected the task, score on the calling goroutine
			results[i] = ranking.Score(candidate)
			wg.Done()
		}
	}
	wg.Wait()

	// Monitor callbacks stay sequential
	for _, result := range results {
		if result != nil && result.Tier != core.TierNone {
			monitor.Scored(result)
		}
	}
	return results
}

// Release releases the worker pool.
// The matchmaker should not be used after calling Release.
func (m *Matchmaker) Release() {
	if m.pool != nil {
		m.pool.Release()
	}
}
