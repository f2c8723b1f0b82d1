package match

import (
	"sort"

	"github.com/poiesic/matchbook/core"
)

// Ranking carries a subject profile with its token sets computed once,
// so ranking a pool of N candidates tokenizes the subject's text fields
// a single time instead of N times. Observable results are identical to
// scoring each pair from scratch. A Ranking is read-only after creation
// and safe for concurrent Score calls.
type Ranking struct {
	m          *Matcher
	subject    *core.Profile
	sellTokens []string
	needTokens []string
}

// NewRanking prepares a ranking for the given subject.
func (m *Matcher) NewRanking(subject *core.Profile) *Ranking {
	r := &Ranking{m: m, subject: subject}
	if subject != nil {
		r.sellTokens = m.Tokenize(subject.WhatISell)
		r.needTokens = m.Tokenize(subject.WhatINeed)
	}
	return r
}

// Subject returns the profile this ranking was prepared for.
func (r *Ranking) Subject() *core.Profile {
	return r.subject
}

// Rank scores every candidate, drops non-matches (including the
// subject's own profile, whose self-match is always NONE) and returns
// the rest ordered by score descending. Candidates with equal scores
// keep their relative input order.
func (r *Ranking) Rank(candidates []*core.Profile) []*core.MatchResult {
	results := make([]*core.MatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		results = append(results, r.Score(candidate))
	}
	return SortResults(results)
}

// Rank scores candidates against subject and returns the matches in
// descending score order. See Ranking.Rank.
func (m *Matcher) Rank(subject *core.Profile, candidates []*core.Profile) []*core.MatchResult {
	return m.NewRanking(subject).Rank(candidates)
}

// SortResults drops nil and NONE-tier results and stable-sorts the rest
// by score descending, preserving input order among equal scores.
func SortResults(results []*core.MatchResult) []*core.MatchResult {
	ranked := make([]*core.MatchResult, 0, len(results))
	for _, result := range results {
		if result == nil || result.Tier == core.TierNone {
			continue
		}
		ranked = append(ranked, result)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
