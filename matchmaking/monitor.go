package matchmaking

import "github.com/poiesic/matchbook/core"

// MatchMonitor provides hooks to observe the matchmaking process.
// Implement this interface to track intermediate steps and results
// while a subject is being matched against the candidate pool.
type MatchMonitor interface {
	Start(subject *core.Profile)
	AfterCandidateFetch(candidates []*core.Profile)
	Scored(result *core.MatchResult)
	Finish(results []*core.MatchResult)
}

// noopMonitor is a no-op implementation of MatchMonitor
type noopMonitor struct{}

var _ MatchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.Profile)                  {}
func (n *noopMonitor) AfterCandidateFetch(_ []*core.Profile)  {}
func (n *noopMonitor) Scored(_ *core.MatchResult)             {}
func (n *noopMonitor) Finish(_ []*core.MatchResult)           {}
