// Package cpu implements the parser, branch resolver and execution engine
// for a minimal 8-bit instruction set simulator.
//
// The machine has six signed 8-bit registers (R1-R6), 256 bytes of
// byte-addressable memory, and a single equality flag set by CMP. Memory
// accesses are charged against a two-tier cost model: the first touch of an
// address is a remote access, every later touch is a local hit.
//
// Source lines carry their own line number, and JE/JMP targets refer to
// those numbers. A parsed Program must be resolved into a Resolved program,
// which maps the targets to instruction indexes, before it can execute.
package cpu
