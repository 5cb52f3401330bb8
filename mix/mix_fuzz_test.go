package mix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzStep(f *testing.F) {
	for op := range 12 {
		f.Add(int32(op), int32(10), int32(7), int32(3), uint16(0))
		f.Add(int32(op), int32(-1), int32(0), int32(-5), uint16(MEMORY_SIZE-2))
		f.Add(int32(op), int32(MEMORY_SIZE), int32(1), int32(0), uint16(MEMORY_SIZE-1))
	}

	f.Fuzz(func(t *testing.T, opcode int32, operand int32, a int32, cell int32, location uint16) {
		assert := assert.New(t)

		m := NewMachine()
		loc := int(location) % MEMORY_SIZE
		assert.NoError(m.Write(loc, Word(opcode)))
		if loc+1 < MEMORY_SIZE {
			assert.NoError(m.Write(loc+1, Word(operand)))
		}
		if operand >= 0 && operand < MEMORY_SIZE && int(operand) != loc && int(operand) != loc+1 {
			assert.NoError(m.Write(int(operand), Word(cell)))
		}
		m.SetA(Word(a))
		assert.NoError(m.SetLocation(loc))

		before := *m
		op := Opcode(opcode)

		halted, err := m.Step()
		if err != nil {
			assert.False(halted)
			assert.Equal(STATE_FAILED, m.State())

			// Nothing but the run state changes on failure.
			after := *m
			after.state = before.state
			after.failure = before.failure
			assert.Equal(before, after)
			return
		}

		assert.True(op.Valid())
		assert.Equal(op == OP_HLT, halted)

		addr := int(operand)
		switch op {
		case OP_HLT:
			assert.Equal(loc+1, m.Location())
			assert.Equal(STATE_HALTED, m.State())
		case OP_JMP:
			assert.Equal(addr, m.Location())
		case OP_JZ:
			if a == 0 {
				assert.Equal(addr, m.Location())
			} else {
				assert.Equal(loc+2, m.Location())
			}
		case OP_JL:
			if a < 0 {
				assert.Equal(addr, m.Location())
			} else {
				assert.Equal(loc+2, m.Location())
			}
		default:
			assert.Equal(loc+2, m.Location())
		}

		value, _ := before.Read(addr)
		switch op {
		case OP_LDA:
			assert.Equal(value, m.A())
		case OP_STA:
			stored, err := m.Read(addr)
			assert.NoError(err)
			assert.Equal(Word(a), stored)
		case OP_ADD:
			assert.Equal(Word(a)+value, m.A())
		case OP_SUB:
			assert.Equal(Word(a)-value, m.A())
		case OP_DIV:
			assert.NotEqual(Word(0), value)
			assert.Equal(Word(a)/value, m.A())
		case OP_CMP:
			assert.Equal(Word(a)-value, m.Comparison())
			assert.Equal(Word(a), m.A())
		default:
			assert.Equal(Word(a), m.A())
		}
	})
}
