// Package brain builds a directed, possibly cyclic neural graph from a
// genome and propagates sensory activations to action neurons across it.
package brain

import (
	"fmt"

	"evosim/gene"
	"evosim/neuron"
)

// Connection is one outgoing edge of a Neuron, as appended by Build in
// genome order. Duplicate (source, dest) pairs with different weights are
// permitted and remain distinct entries.
type Connection struct {
	Dest       neuron.ID
	Weight     float64
	Activation uint8
}

// Neuron is a runtime node: an id, its role, an accumulator, a firing
// threshold, and its ordered outgoing connections.
type Neuron struct {
	ID        neuron.ID
	Role      neuron.Role
	Data      float64
	Threshold float64
	Out       []Connection
}

// Brain is the decoded, executable neural graph derived from one genome.
// Neurons preserve first-seen order so sensor/action id indexing is stable;
// Sensory and Action hold the subset of indices into Neurons that are
// sensory/action neurons, in first-seen order, mirroring the genome's
// introduction order rather than the full roster's numeric order.
type Brain struct {
	Neurons []Neuron
	Sensory []int // indices into Neurons, in first-seen order
	Action  []int

	index map[neuron.ID]int
}

// Build scans genome in order, discovering neurons and then their
// connections in two passes. Inert genes (see gene.Decode) are skipped
// entirely: they introduce no neuron and no connection.
//
// Build tolerates an all-inert genome, returning a Brain with zero neurons.
// It never fails: Go's allocator either returns usable memory or the
// runtime panics, so there is no NONE-on-failure case for callers to
// handle.
func Build(g []gene.Gene, banks neuron.Banks) *Brain {
	b := &Brain{
		Neurons: make([]Neuron, 0, len(g)*2),
		index:   make(map[neuron.ID]int, len(g)*2),
	}

	decoded := make([]gene.Decoded, 0, len(g))
	for _, word := range g {
		d, ok := gene.Decode(word, banks)
		if !ok {
			continue
		}
		decoded = append(decoded, d)
		b.introduce(d.Source, banks)
		b.introduce(d.Dest, banks)
	}

	for _, d := range decoded {
		srcIdx := b.index[d.Source]
		b.Neurons[srcIdx].Out = append(b.Neurons[srcIdx].Out, Connection{
			Dest:       d.Dest,
			Weight:     d.Weight,
			Activation: d.Activation,
		})
	}

	return b
}

// introduce registers id the first time it is seen, tagging it with the
// role implied by the gene that introduced it. A second introduction of an
// already-known id is a no-op: the first tag wins.
func (b *Brain) introduce(id neuron.ID, banks neuron.Banks) {
	if _, known := b.index[id]; known {
		return
	}
	role := banks.RoleOf(id)
	idx := len(b.Neurons)
	b.index[id] = idx
	b.Neurons = append(b.Neurons, Neuron{ID: id, Role: role})
	switch role {
	case neuron.RoleSensory:
		b.Sensory = append(b.Sensory, idx)
	case neuron.RoleAction:
		b.Action = append(b.Action, idx)
	}
}

// IndexOf returns the slot id occupies in Neurons, or -1 if id was never
// introduced by any connection in this brain.
func (b *Brain) IndexOf(id neuron.ID) int {
	if idx, ok := b.index[id]; ok {
		return idx
	}
	return -1
}

// SetSensoryData writes data into the sensory neuron identified by id. It
// is a caller error to pass an id this brain never introduced; such an id
// simply has no effect, matching the driver's tolerance for brains that
// never reference a given sensory id.
func (b *Brain) SetSensoryData(id neuron.ID, data float64) {
	if idx := b.IndexOf(id); idx >= 0 {
		b.Neurons[idx].Data = data
	}
}

// String renders a brain for debugging: neuron count and connection count.
func (b *Brain) String() string {
	conns := 0
	for _, n := range b.Neurons {
		conns += len(n.Out)
	}
	return fmt.Sprintf("brain{neurons=%d connections=%d}", len(b.Neurons), conns)
}
