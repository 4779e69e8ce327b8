package game

import (
	"math"
	"sort"
)

const (
	// connectWindowMs is the half-open tolerance window around an arc's
	// start time within which a preceding arc's end counts as touching.
	connectWindowMs = 10
	// connectToleranceX is the absolute horizontal tolerance for two
	// arc endpoints to be considered the same position.
	connectToleranceX = 0.1
)

// connectArcs decides for every arc whether it continues a preceding
// one, clearing its head judgment when it does. Arcs are returned
// sorted ascending by start time.
//
// Both orderings share one monotone cursor: candidates ending more than
// 10ms before the current start can never match a later arc either, so
// the cursor only advances, and the inner scan stops once candidates
// end 10ms or more after the current start.
func connectArcs(arcs []*Arc) []*Arc {
	byStart := make([]*Arc, len(arcs))
	copy(byStart, arcs)
	sort.SliceStable(byStart, func(i, j int) bool { return byStart[i].T1 < byStart[j].T1 })

	byEnd := make([]*Arc, len(byStart))
	copy(byEnd, byStart)
	sort.SliceStable(byEnd, func(i, j int) bool { return byEnd[i].T2 < byEnd[j].T2 })

	i := 0
	for _, arc := range byStart {
		for j := i; j < len(byEnd); j++ {
			prev := byEnd[j]
			if prev.T2 <= arc.T1-connectWindowMs {
				i = j
				continue
			}
			if prev.T2 >= arc.T1+connectWindowMs {
				break
			}
			if prev != arc && arc.Y1 == prev.Y2 && math.Abs(arc.X1-prev.X2) <= connectToleranceX {
				arc.noHead = true
			}
		}
	}
	return byStart
}
