package match

import (
	"math"
	"strings"

	"github.com/poiesic/matchbook/core"
)

// Matcher scores business compatibility between member profiles.
// It holds no mutable state and is safe for concurrent use.
type Matcher struct {
	cfg       *Config
	stopwords map[string]struct{}
}

// Option configures a Matcher.
type Option func(*Matcher) error

// WithConfig sets a custom engine configuration.
// Default is DefaultConfig().
func WithConfig(cfg *Config) Option {
	return func(m *Matcher) error {
		if cfg == nil {
			return ErrConfigRequired
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		m.cfg = cfg
		return nil
	}
}

// New creates a new matcher.
func New(opts ...Option) (*Matcher, error) {
	m := &Matcher{cfg: DefaultConfig()}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	m.stopwords = compileStopwords(m.cfg.Stopwords)
	return m, nil
}

// Config returns the matcher's configuration.
func (m *Matcher) Config() *Config {
	return m.cfg
}

// Match scores candidate against subject. The result is directional:
// swapping the two profiles generally changes the score because the
// sells/needs dimensions are not symmetric. A profile never matches
// itself.
func (m *Matcher) Match(subject, candidate *core.Profile) *core.MatchResult {
	return m.NewRanking(subject).Score(candidate)
}

// Score evaluates the four compatibility dimensions in their fixed
// order, sums the contributions and classifies the clamped total.
// Returns nil when the ranking has no subject or candidate is nil.
func (r *Ranking) Score(candidate *core.Profile) *core.MatchResult {
	if r.subject == nil || candidate == nil {
		return nil
	}
	if candidate.Id == r.subject.Id {
		return &core.MatchResult{Profile: candidate, Score: 0, Tier: core.TierNone}
	}

	cfg := r.m.cfg
	total := 0
	var reasons []core.MatchReason

	// Candidate sells what the subject needs, at full weight.
	if ov := r.m.overlapTokens(r.m.Tokenize(candidate.WhatISell), r.needTokens); ov.Score > cfg.MinTextScore {
		total += ov.Score
		reasons = append(reasons, newReason(core.ReasonSellsNeeds, ov.MatchedKeywords, len(ov.MatchedKeywords), ov.Score))
	}

	// Candidate needs what the subject sells, at reduced weight.
	// The floor applies to the pre-weight score.
	if ov := r.m.overlapTokens(r.sellTokens, r.m.Tokenize(candidate.WhatINeed)); ov.Score > cfg.MinTextScore {
		points := int(math.Round(float64(ov.Score) * cfg.ReverseWeight))
		total += points
		reasons = append(reasons, newReason(core.ReasonNeedsSells, ov.MatchedKeywords, len(ov.MatchedKeywords), points))
	}

	// Shared partnership sectors. No floor: any non-empty intersection
	// contributes, which can leave reasons populated on a NONE-tier pair.
	if shared := sharedLabels(r.subject.PartnershipInterests, candidate.PartnershipInterests); len(shared) > 0 {
		points := min(len(shared)*cfg.SectorPoints, cfg.SectorCap)
		total += points
		reasons = append(reasons, newReason(core.ReasonSector, shared, cfg.SectorDetailMax, points))
	}

	// Shared interest tags, same shape as sectors at lower weight.
	if shared := sharedLabels(r.subject.Tags, candidate.Tags); len(shared) > 0 {
		points := min(len(shared)*cfg.TagPoints, cfg.TagCap)
		total += points
		reasons = append(reasons, newReason(core.ReasonTag, shared, cfg.TagDetailMax, points))
	}

	score := min(total, cfg.MaxScore)
	return &core.MatchResult{
		Profile: candidate,
		Score:   score,
		Tier:    cfg.Classify(score),
		Reasons: reasons,
	}
}

func newReason(t core.ReasonType, detail []string, detailMax, points int) core.MatchReason {
	if len(detail) > detailMax {
		detail = detail[:detailMax]
	}
	return core.MatchReason{
		Type:   t,
		Label:  t.Label(),
		Detail: strings.Join(detail, ", "),
		Points: points,
	}
}

// sharedLabels intersects two set-like label lists, iterating a and
// keeping only labels also present in b. Duplicates in a are collapsed.
func sharedLabels(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	inB := make(map[string]struct{}, len(b))
	for _, label := range b {
		inB[label] = struct{}{}
	}

	var shared []string
	seen := make(map[string]struct{}, len(a))
	for _, label := range a {
		if _, ok := inB[label]; !ok {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		shared = append(shared, label)
	}
	return shared
}
