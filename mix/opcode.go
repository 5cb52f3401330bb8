package mix

import (
	"strings"
)

// Opcode is an instruction opcode word.
type Opcode Word

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT = Opcode(0) // HLT
	OP_LDA = Opcode(1) // LDA
	OP_STA = Opcode(2) // STA
	OP_ADD = Opcode(3) // ADD
	OP_SUB = Opcode(4) // SUB
	OP_DIV = Opcode(5) // DIV
	OP_JMP = Opcode(6) // JMP
	OP_JZ  = Opcode(7) // JZ
	OP_JL  = Opcode(8) // JL
	OP_CMP = Opcode(9) // CMP
)

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = map[string]Opcode{}

func init() {
	for op := OP_HLT; op <= OP_CMP; op++ {
		opcodeMap[op.String()] = op
	}
}

// LookupOpcode returns the opcode for a mnemonic, ignoring case.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	op, ok = opcodeMap[strings.ToUpper(mnemonic)]
	return
}

// Valid returns true if the opcode is a defined instruction.
func (op Opcode) Valid() bool {
	return op >= OP_HLT && op <= OP_CMP
}

// Size returns the number of words in an encoded instruction.
func (op Opcode) Size() int {
	if op == OP_HLT {
		return 1
	}

	return 2
}
