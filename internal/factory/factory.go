// Package factory builds the entities of a generated workspace. Every
// factory is a pure function of its parents, the run configuration, a rand
// stream, and an identifier source, so the orchestrator stays free to hand
// each call an isolated sub-stream. Nothing here mutates a parent pool.
package factory

import (
	"fmt"
	"math/rand/v2"

	"github.com/wolfeidau/taskseed/internal/dist"
)

// ptr returns a pointer to v, for the models' nullable columns.
func ptr[T any](v T) *T { return &v }

// nameDealer deals catalog names without repeats. The catalog is shuffled
// once up front, and once exhausted names come around again with a numeric
// suffix so uniqueness survives any count.
type nameDealer struct {
	names []string
	next  int
}

func newNameDealer(rng *rand.Rand, catalog []string) *nameDealer {
	names := make([]string, len(catalog))
	copy(names, catalog)
	dist.Shuffle(rng, names)

	return &nameDealer{names: names}
}

func (d *nameDealer) deal() string {
	name := d.names[d.next%len(d.names)]
	if round := d.next / len(d.names); round > 0 {
		name = fmt.Sprintf("%s %d", name, round+1)
	}
	d.next++

	return name
}
