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


package match

import (
	"errors"

	"github.com/poiesic/matchbook/core"
)

// defaultStopwords is the curated list of high-frequency Portuguese
// connector words removed during tokenization. Entries are normalized
// through the tokenizer's own pipeline when a Matcher is built, so
// accented and unaccented spellings behave identically.
var defaultStopwords = []string{
	"com", "como", "das", "dos", "ela", "elas", "ele", "eles",
	"entre", "essa", "esse", "esta", "este", "isso", "isto", "mais",
	"mas", "muito", "nas", "nos", "não", "nossa", "nosso", "onde",
	"para", "pela", "pelo", "por", "quais", "qual", "quando", "que",
	"sem", "ser", "seu", "seus", "sobre", "sua", "suas", "são",
	"também", "tem", "uma", "você",
}

// Config holds the tunable constants of the matching engine. The zero
// value is not usable; start from DefaultConfig or NewConfig.
type Config struct {
	// Stopwords are discarded during tokenization.
	Stopwords []string

	// OverlapScale multiplies the Jaccard similarity of two token sets
	// before rounding. Default: 150.
	OverlapScale float64

	// OverlapCap is the maximum score a single text-overlap computation
	// can produce. Default: 50.
	OverlapCap int

	// MaxKeywords is the number of matched keywords sampled for display.
	// Default: 5.
	MaxKeywords int

	// MinTextScore is the floor for the text-overlap dimensions: an
	// overlap contributes only when its score strictly exceeds this
	// value. Default: 5.
	MinTextScore int

	// ReverseWeight scales the needs/sells direction (candidate needs
	// what the subject sells). Default: 0.7.
	ReverseWeight float64

	// SectorPoints per shared partnership sector, capped at SectorCap;
	// SectorDetailMax labels shown. Defaults: 10, 30, 3.
	SectorPoints    int
	SectorCap       int
	SectorDetailMax int

	// TagPoints per shared interest tag, capped at TagCap; TagDetailMax
	// labels shown. Defaults: 5, 20, 4.
	TagPoints    int
	TagCap       int
	TagDetailMax int

	// MaxScore clamps the summed contributions. Default: 100.
	MaxScore int

	// Tier thresholds, inclusive on the lower bound.
	// Defaults: 70 / 40 / 10.
	StrongThreshold    int
	CommonThreshold    int
	PotentialThreshold int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithStopwords replaces the stopword list.
func WithStopwords(words []string) ConfigOption {
	return func(c *Config) {
		c.Stopwords = words
	}
}

// WithReverseWeight sets the weight of the needs/sells direction.
func WithReverseWeight(weight float64) ConfigOption {
	return func(c *Config) {
		c.ReverseWeight = weight
	}
}

// WithTierThresholds sets the inclusive lower bounds of the STRONG,
// COMMON and POTENTIAL tiers.
func WithTierThresholds(strong, common, potential int) ConfigOption {
	return func(c *Config) {
		c.StrongThreshold = strong
		c.CommonThreshold = common
		c.PotentialThreshold = potential
	}
}

// DefaultConfig returns a Config with the engine's current production values.
func DefaultConfig() *Config {
	return &Config{
		Stopwords:          defaultStopwords,
		OverlapScale:       150,
		OverlapCap:         50,
		MaxKeywords:        5,
		MinTextScore:       5,
		ReverseWeight:      0.7,
		SectorPoints:       10,
		SectorCap:          30,
		SectorDetailMax:    3,
		TagPoints:          5,
		TagCap:             20,
		TagDetailMax:       4,
		MaxScore:           100,
		StrongThreshold:    70,
		CommonThreshold:    40,
		PotentialThreshold: 10,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.OverlapScale <= 0 {
		return errors.New("match config: OverlapScale must be positive")
	}
	if c.OverlapCap <= 0 {
		return errors.New("match config: OverlapCap must be positive")
	}
	if c.MaxKeywords <= 0 {
		return errors.New("match config: MaxKeywords must be positive")
	}
	if c.MinTextScore < 0 {
		return errors.New("match config: MinTextScore cannot be negative")
	}
	if c.ReverseWeight <= 0 || c.ReverseWeight > 1 {
		return errors.New("match config: ReverseWeight must be in (0, 1]")
	}
	if c.SectorPoints <= 0 || c.SectorCap <= 0 || c.SectorDetailMax <= 0 {
		return errors.New("match config: sector points, cap and detail limit must be positive")
	}
	if c.TagPoints <= 0 || c.TagCap <= 0 || c.TagDetailMax <= 0 {
		return errors.New("match config: tag points, cap and detail limit must be positive")
	}
	if c.MaxScore <= 0 {
		return errors.New("match config: MaxScore must be positive")
	}
	if c.StrongThreshold <= c.CommonThreshold || c.CommonThreshold <= c.PotentialThreshold {
		return errors.New("match config: tier thresholds must be strictly descending")
	}
	if c.PotentialThreshold <= 0 {
		return errors.New("match config: PotentialThreshold must be positive")
	}
	return nil
}

// Classify maps a score to its match tier. Boundaries are inclusive on
// the lower bound of each tier.
func (c *Config) Classify(score int) core.MatchTier {
	switch {
	case score >= c.StrongThreshold:
		return core.TierStrong
	case score >= c.CommonThreshold:
		return core.TierCommon
	case score >= c.PotentialThreshold:
		return core.TierPotential
	default:
		return core.TierNone
	}
}
