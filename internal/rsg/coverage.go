package rsg

import "sort"

// Coverage tracks which alternatives the expander has chosen across a
// run. It only observes; selection stays uniform whether or not a
// tracker is attached.
type Coverage struct {
	grammar Grammar
	counts  map[string][]int
}

// CoverageStats summarizes a run: how many of the grammar's
// alternatives exist, and how many were chosen at least once.
type CoverageStats struct {
	Total   int
	Covered int
	Percent float64
}

// NewCoverage creates a tracker with one counter per alternative in
// grammar.
func NewCoverage(grammar Grammar) *Coverage {
	counts := make(map[string][]int, len(grammar))
	for name, def := range grammar {
		counts[name] = make([]int, len(def.Alternatives))
	}
	return &Coverage{grammar: grammar, counts: counts}
}

// Record notes that alternative was chosen for name. Choices outside
// the tracked grammar are ignored.
func (c *Coverage) Record(name string, alternative int) {
	slots, ok := c.counts[name]
	if !ok || alternative < 0 || alternative >= len(slots) {
		return
	}
	slots[alternative]++
}

// Count returns how many times alternative was chosen for name.
func (c *Coverage) Count(name string, alternative int) int {
	slots, ok := c.counts[name]
	if !ok || alternative < 0 || alternative >= len(slots) {
		return 0
	}
	return slots[alternative]
}

// Complete reports whether every alternative of every definition was
// chosen at least once.
func (c *Coverage) Complete() bool {
	for _, slots := range c.counts {
		for _, n := range slots {
			if n == 0 {
				return false
			}
		}
	}
	return true
}

// Uncovered lists the alternatives never chosen, each rendered as
// "<name> -> tokens", sorted for stable output.
func (c *Coverage) Uncovered() []string {
	var uncovered []string
	for name, slots := range c.counts {
		for i, n := range slots {
			if n == 0 {
				uncovered = append(uncovered, name+" -> "+c.grammar[name].Alternatives[i].String())
			}
		}
	}
	sort.Strings(uncovered)
	return uncovered
}

// Stats returns the overall coverage summary.
func (c *Coverage) Stats() CoverageStats {
	var stats CoverageStats
	for _, slots := range c.counts {
		for _, n := range slots {
			stats.Total++
			if n > 0 {
				stats.Covered++
			}
		}
	}
	if stats.Total > 0 {
		stats.Percent = float64(stats.Covered) / float64(stats.Total) * 100
	}
	return stats
}

// Reset clears all counters.
func (c *Coverage) Reset() {
	for name, slots := range c.counts {
		c.counts[name] = make([]int, len(slots))
	}
}
