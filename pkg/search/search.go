// Package search implements the breadth-first search for a shortest
// rewrite path between a start and a target term, under configurable
// depth and size bounds — the Search Engine component.
package search

import (
	"github.com/gitrdm/eqprover/pkg/axiom"
	"github.com/gitrdm/eqprover/pkg/rewrite"
	"github.com/gitrdm/eqprover/pkg/term"
)

// PathEntry is one step of a discovered path: the axiom applied, and the
// term that results from applying it. The displayed transcript is the
// start term followed by each entry's Term in order.
type PathEntry struct {
	AxiomName string
	Term      term.Term
}

// Result is the outcome of FindPath: either a path and the number of
// distinct states the engine visited while finding it, or a failure
// together with however many states it checked before giving up.
type Result struct {
	Found        bool
	Path         []PathEntry
	VisitedCount int
}

type parentLink struct {
	axiomName string
	predKey   string
}

// FindPath runs a plain BFS over canonical keys, starting from start and
// stopping the moment a dequeued node's canonical text equals target's.
// A node whose depth has reached maxDepth, or whose canonical text is
// longer than maxTreeSize, is left in the visited set but not expanded
// further. Ties among equal-length paths are broken by the deterministic
// enumeration order of rewrite.AllSteps, since states are marked visited
// (and so excluded from re-enqueueing) in first-discovered order.
func FindPath(axioms []axiom.Axiom, start, target term.Term, maxDepth, maxTreeSize int) Result {
	gen := term.NewGenerator()

	startKey := start.String()
	targetKey := target.String()

	visited := map[string]bool{startKey: true}
	parent := map[string]parentLink{}
	depth := map[string]int{startKey: 0}
	states := map[string]term.Term{startKey: start}
	frontier := []term.Term{start}

	for len(frontier) > 0 {
		u := frontier[0]
		frontier = frontier[1:]
		ku := u.String()

		if ku == targetKey {
			return Result{
				Found:        true,
				Path:         reconstruct(parent, states, startKey, ku),
				VisitedCount: len(visited),
			}
		}

		if len(ku) > maxTreeSize || depth[ku] >= maxDepth {
			continue
		}

		for _, step := range rewrite.AllSteps(u, axioms, gen) {
			kv := step.Term.String()
			if visited[kv] {
				continue
			}
			visited[kv] = true
			parent[kv] = parentLink{axiomName: step.AxiomName, predKey: ku}
			depth[kv] = depth[ku] + 1
			states[kv] = step.Term
			frontier = append(frontier, step.Term)
		}
	}

	return Result{Found: false, VisitedCount: len(visited)}
}

// reconstruct walks the parent map backward from matchedKey to startKey,
// collecting (axiom name, resulting term) pairs, then reverses them into
// start-to-target order.
func reconstruct(parent map[string]parentLink, states map[string]term.Term, startKey, matchedKey string) []PathEntry {
	var reversed []PathEntry
	for k := matchedKey; k != startKey; {
		pl := parent[k]
		reversed = append(reversed, PathEntry{AxiomName: pl.axiomName, Term: states[k]})
		k = pl.predKey
	}
	path := make([]PathEntry, len(reversed))
	for i, e := range reversed {
		path[len(reversed)-1-i] = e
	}
	return path
}
