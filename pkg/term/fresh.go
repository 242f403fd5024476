package term

import "fmt"

// Generator is the monotonic counter that produces fresh Unres names for
// one proof obligation. A single Generator must be shared across the
// whole proof attempt — not merely within one substitution — or the
// search engine's visited set will conflate distinct states that happen
// to have been freshened independently.
type Generator struct {
	prefix string
	next   int
}

// NewGenerator returns a Generator whose placeholders use the reserved
// "?" prefix, disjoint from any identifier a script can write.
func NewGenerator() *Generator {
	return &Generator{prefix: "?"}
}

// Fresh returns a new, previously unused Unres node.
func (g *Generator) Fresh() Term {
	name := fmt.Sprintf("%s%d", g.prefix, g.next)
	g.next++
	return Unres{Name: name}
}
