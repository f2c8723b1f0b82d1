package match

import "math"

// Overlap is the bounded similarity between two token sets.
type Overlap struct {
	Score           int      // Within [0, Config.OverlapCap]
	MatchedKeywords []string // Up to Config.MaxKeywords shared tokens, in order of first appearance
}

// Overlap tokenizes both texts and scores their lexical overlap. The
// score is the Jaccard similarity of the two token sets scaled by
// Config.OverlapScale, rounded, and clamped to Config.OverlapCap.
// Either text being empty yields a zero overlap.
func (m *Matcher) Overlap(textA, textB string) Overlap {
	return m.overlapTokens(m.Tokenize(textA), m.Tokenize(textB))
}

// overlapTokens scores two already-tokenized texts. The intersection is
// collected iterating tokensA so the matched-keyword sample is
// deterministic.
func (m *Matcher) overlapTokens(tokensA, tokensB []string) Overlap {
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return Overlap{}
	}

	setB := make(map[string]struct{}, len(tokensB))
	for _, token := range tokensB {
		setB[token] = struct{}{}
	}

	var shared []string
	for _, token := range tokensA {
		if _, ok := setB[token]; ok {
			shared = append(shared, token)
		}
	}
	if len(shared) == 0 {
		return Overlap{}
	}

	union := len(tokensA) + len(tokensB) - len(shared)
	jaccard := float64(len(shared)) / float64(union)

	score := int(math.Round(jaccard * m.cfg.OverlapScale))
	if score > m.cfg.OverlapCap {
		score = m.cfg.OverlapCap
	}

	keywords := shared
	if len(keywords) > m.cfg.MaxKeywords {
		keywords = keywords[:m.cfg.MaxKeywords]
	}

	return Overlap{Score: score, MatchedKeywords: keywords}
}
