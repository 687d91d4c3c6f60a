// Package report formats the execution statistics of a simulator run, and
// checks expectations against them.
package report

import (
	"fmt"
	"io"
	"iter"

	"github.com/ezrec/myiss/cpu"
)

// Stats are the final counters of a run.
type Stats struct {
	Instructions int // Instructions executed.
	Cycles       int // Clock cycles consumed.
	LocalHits    int // Loads and stores to warm addresses.
	LoadStores   int // Loads and stores executed.
}

// FromCpu reads the counters of a CPU.
func FromCpu(c *cpu.Cpu) Stats {
	return Stats{
		Instructions: c.Instructions,
		Cycles:       c.Cycles,
		LocalHits:    c.LocalHits,
		LoadStores:   c.LoadStores,
	}
}

// WriteTo writes the four report lines. The text is fixed, and numbers are
// never localized.
func (st Stats) WriteTo(w io.Writer) (n int64, err error) {
	lines := []struct {
		text  string
		value int
	}{
		{"Total number of executed instructions", st.Instructions},
		{"Total number of clock cycles", st.Cycles},
		{"Number of hits to local memory", st.LocalHits},
		{"Total number of executed LD/ST instructions", st.LoadStores},
	}

	for _, line := range lines {
		var count int
		count, err = fmt.Fprintf(w, "%s: %d\n", line.text, line.value)
		n += int64(count)
		if err != nil {
			return
		}
	}

	return
}

// All iterates over the counters by their expectation names.
func (st Stats) All() iter.Seq2[string, int] {
	return func(yield func(name string, value int) bool) {
		_ = yield("instructions", st.Instructions) &&
			yield("cycles", st.Cycles) &&
			yield("hits", st.LocalHits) &&
			yield("ldst", st.LoadStores)
	}
}
