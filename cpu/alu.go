package cpu

// Registers hold signed bytes, but arithmetic, comparison and addressing
// all work on the unsigned byte value.

// Byte returns the unsigned byte value of a register.
func Byte(value int8) uint8 {
	return uint8(int(value) & 0xff)
}

// Signed reinterprets an unsigned byte as two's complement.
func Signed(value uint8) int8 {
	return int8(value)
}

// Truncate keeps the low byte of an integer, as two's complement.
func Truncate(value int) int8 {
	return Signed(uint8(value & 0xff))
}

// Add8 is modulo-256 addition. Overflow wraps without a flag.
func Add8(a, b int8) int8 {
	sum := int(Byte(a)) + int(Byte(b))
	return Truncate(sum)
}
