package fallback

import (
	"fmt"
	"strings"
)

// Observer receives diagnostic events from chain construction and itemization.
// Observers installed on a chain are called from every goroutine itemizing with
// that chain and therefore have to be safe for concurrent use.
type Observer interface {
	ChainBuilt(report BuildReport)
	ClusterItemized(event ClusterEvent)
}

// BuildReport summarizes how the code-points of a chain have been classified
// during construction.
type BuildReport struct {
	Chain                string
	Families             int
	Codepoints           int // distinct code-points covered by any family
	Distinct             int // code-points mapping to exactly one family
	UnambiguousConflicts int // multiple families, none with a language tag
	ConflictGroups       []ConflictGroup
	Mappings             int // intervals in the static index
}

// ConflictGroup is a set of language-tagged families competing for the same
// code-points. These code-points are resolved during itemization.
type ConflictGroup struct {
	Families   []FamilyIndex
	Names      []string
	Codepoints []rune
}

func (g ConflictGroup) String() string {
	cps := make([]string, len(g.Codepoints))
	for i, cp := range g.Codepoints {
		cps[i] = fmt.Sprintf("0x%04x", cp)
	}
	return strings.Join(g.Names, ",") + " " + strings.Join(cps, ",")
}

// MatchPath tells how a family has been found for a grapheme cluster.
type MatchPath uint8

const (
	// MatchIndex: the cluster is a single code-point found in the static index.
	MatchIndex MatchPath = iota
	// MatchScan: the family has been selected by scoring all families.
	MatchScan
	// MatchNone: no family supports the cluster.
	MatchNone
)

func (p MatchPath) String() string {
	switch p {
	case MatchIndex:
		return "index"
	case MatchScan:
		return "scan"
	case MatchNone:
		return "unresolved"
	}
	return "unknown"
}

// ClusterEvent describes the outcome of itemizing one grapheme cluster.
type ClusterEvent struct {
	Cluster    string
	Start, End int // byte span of the cluster
	Path       MatchPath
	Family     FamilyIndex // NoFamily for MatchNone
	FamilyName string
	Extended   bool // the cluster extended the previous run
}

// --- Observers -------------------------------------------------------------

// NopObserver ignores all events.
type NopObserver struct{}

// ChainBuilt does nothing.
func (NopObserver) ChainBuilt(BuildReport) {}

// ClusterItemized does nothing.
func (NopObserver) ClusterItemized(ClusterEvent) {}

// TraceObserver writes events to the package tracer. Build statistics are
// traced with level Info, conflict groups and per-cluster decisions with level
// Debug. This is the default observer of a chain.
type TraceObserver struct{}

// ChainBuilt traces construction statistics.
func (TraceObserver) ChainBuilt(r BuildReport) {
	for _, g := range r.ConflictGroups {
		tracer().Debugf("%s", g)
	}
	if r.Codepoints == 0 {
		return
	}
	total := float64(r.Codepoints)
	tracer().Infof("%s: %d/%d (%.1f%%) code-points map to exactly 1 family", r.Chain,
		r.Distinct, r.Codepoints, 100*float64(r.Distinct)/total)
	tracer().Infof("%s: %d/%d (%.1f%%) code-points map to multiple families but one is the clear winner",
		r.Chain, r.UnambiguousConflicts, r.Codepoints, 100*float64(r.UnambiguousConflicts)/total)
	tracer().Infof("%s: %d distinct groups of families with ambiguous code-points",
		r.Chain, len(r.ConflictGroups))
	tracer().Infof("%s: %d mappings for %d unambiguous code-points", r.Chain, r.Mappings, r.Distinct)
}

// ClusterItemized traces the decision for one cluster.
func (TraceObserver) ClusterItemized(e ClusterEvent) {
	if e.Path == MatchNone {
		tracer().Debugf("%q (%d..%d) %s, failed", e.Cluster, e.Start, e.End, e.Path)
		return
	}
	op := "insert"
	if e.Extended {
		op = "continue"
	}
	tracer().Debugf("%q %s => %s (%d..%d) (%s)", e.Cluster, e.Path, e.FamilyName, e.Start, e.End, op)
}
