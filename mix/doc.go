// Package mix implements a small word-oriented machine in the style of
// Knuth's MIX.
//
// The machine has a signed accumulator (A), an extension register (X), six
// index registers (I1-I6), a comparison flag, a program counter (the
// location) and 4000 words of memory. Instructions are an opcode word
// followed by a single operand word holding a direct memory address; HLT is
// the only instruction without an operand.
//
// All state lives in a Machine value. Every access is bounds checked and a
// failing operation leaves the machine unchanged.
package mix
