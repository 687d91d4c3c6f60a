package cpu

const (
	MEMORY_SIZE = 256 // Bytes of addressable memory.

	CYCLE_BASIC  = 1  // Cost of every non-memory instruction.
	CYCLE_LOCAL  = 2  // Cost of a memory access to a warm address.
	CYCLE_REMOTE = 50 // Cost of the first access to an address.
)

// Memory is the data memory, with a warm flag per address.
// An address is cold until its first load or store.
type Memory struct {
	Data    [MEMORY_SIZE]uint8
	Touched [MEMORY_SIZE]bool
}

// access charges an access to addr, and warms it.
func (m *Memory) access(addr uint8) (cycles int, hit bool) {
	if m.Touched[addr] {
		return CYCLE_LOCAL, true
	}

	m.Touched[addr] = true
	return CYCLE_REMOTE, false
}

// Load reads a byte, returning the cost of the access.
func (m *Memory) Load(addr uint8) (value uint8, cycles int, hit bool) {
	cycles, hit = m.access(addr)
	value = m.Data[addr]
	return
}

// Store writes a byte, returning the cost of the access.
func (m *Memory) Store(addr uint8, value uint8) (cycles int, hit bool) {
	cycles, hit = m.access(addr)
	m.Data[addr] = value
	return
}

// Warm returns the number of addresses accessed since reset.
func (m *Memory) Warm() (count int) {
	for _, touched := range m.Touched {
		if touched {
			count++
		}
	}
	return
}

func (m *Memory) Reset() {
	clear(m.Data[:])
	clear(m.Touched[:])
}
