package realtime

import (
	"sort"

	"github.com/comalice/tablefsm"
)

// EventWithMeta adds sequencing metadata for deterministic ordering
type EventWithMeta[P any] struct {
	Event       tablefsm.EventID
	Params      P
	SequenceNum uint64
	Priority    int
}

// sortEvents orders events deterministically
// Stable sort preserves insertion order for equal priorities
func sortEvents[P any](events []EventWithMeta[P]) {
	sort.SliceStable(events, func(i, j int) bool {
		// Primary: Higher priority first
		if events[i].Priority != events[j].Priority {
			return events[i].Priority > events[j].Priority
		}

		// Secondary: Earlier sequence number first (FIFO)
		return events[i].SequenceNum < events[j].SequenceNum
	})
}

// Event ordering guarantees:
// 1. Events from same source processed in submission order (sequence number)
// 2. Higher priority events processed first
// 3. Deterministic tie-breaking via sequence number
// 4. Stable sort preserves relative order
