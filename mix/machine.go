// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mix

import (
	"fmt"
	"io"
	"iter"
	"maps"
)

// Machine dimensions.
const (
	MEMORY_SIZE = 4000 // Words of memory.
	INDEX_COUNT = 6    // Index registers I1-I6.
)

var _mix_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
	"INDEX_COUNT": fmt.Sprintf("%v", INDEX_COUNT),
}

// Word is a single signed machine word.
type Word int32

// Register selects a machine register.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_A  = Register(0) // A
	REG_X  = Register(1) // X
	REG_I1 = Register(2) // I1
	REG_I2 = Register(3) // I2
	REG_I3 = Register(4) // I3
	REG_I4 = Register(5) // I4
	REG_I5 = Register(6) // I5
	REG_I6 = Register(7) // I6
)

// State is the run state of the machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_FAILED  = State(2) // failed
)

// Machine is the complete state of a single machine.
type Machine struct {
	a          Word
	x          Word
	index      [INDEX_COUNT]Word
	memory     [MEMORY_SIZE]Word
	comparison Word
	location   int

	state   State
	failure error // Error that moved the machine to STATE_FAILED.
}

// NewMachine creates a machine with all registers and memory zeroed.
func NewMachine() (m *Machine) {
	m = &Machine{}

	return
}

// Defines returns the architecture constants as assembler equates.
func Defines() iter.Seq2[string, string] {
	return maps.All(_mix_defines)
}

// Reset zeros all registers and memory, and returns to STATE_RUNNING at location 0.
func (m *Machine) Reset() {
	*m = Machine{}
}

func validAddress(address int) bool {
	return address >= 0 && address < MEMORY_SIZE
}

// Read returns the word at a memory address.
func (m *Machine) Read(address int) (value Word, err error) {
	if !validAddress(address) {
		err = ErrAddress(address)
		return
	}

	value = m.memory[address]
	return
}

// Write sets the word at a memory address.
func (m *Machine) Write(address int, value Word) (err error) {
	if !validAddress(address) {
		err = ErrAddress(address)
		return
	}

	m.memory[address] = value
	return
}

// A returns the accumulator.
func (m *Machine) A() Word {
	return m.a
}

// SetA sets the accumulator.
func (m *Machine) SetA(value Word) {
	m.a = value
}

// X returns the extension register.
func (m *Machine) X() Word {
	return m.x
}

// SetX sets the extension register.
func (m *Machine) SetX(value Word) {
	m.x = value
}

// Index returns index register n, where 0 selects I1.
func (m *Machine) Index(n int) (value Word, err error) {
	if n < 0 || n >= INDEX_COUNT {
		err = ErrIndex(n)
		return
	}

	value = m.index[n]
	return
}

// SetIndex sets index register n, where 0 selects I1.
func (m *Machine) SetIndex(n int, value Word) (err error) {
	if n < 0 || n >= INDEX_COUNT {
		err = ErrIndex(n)
		return
	}

	m.index[n] = value
	return
}

// ReadRegister returns a register by selector.
func (m *Machine) ReadRegister(reg Register) (value Word, err error) {
	switch reg {
	case REG_A:
		value = m.a
	case REG_X:
		value = m.x
	default:
		value, err = m.Index(int(reg - REG_I1))
	}

	return
}

// WriteRegister sets a register by selector.
func (m *Machine) WriteRegister(reg Register, value Word) (err error) {
	switch reg {
	case REG_A:
		m.a = value
	case REG_X:
		m.x = value
	default:
		err = m.SetIndex(int(reg-REG_I1), value)
	}

	return
}

// Comparison returns the comparison flag.
func (m *Machine) Comparison() Word {
	return m.comparison
}

// Location returns the program counter.
func (m *Machine) Location() int {
	return m.location
}

// SetLocation moves the program counter, and resumes a halted or failed machine.
func (m *Machine) SetLocation(address int) (err error) {
	if !validAddress(address) {
		err = ErrAddress(address)
		return
	}

	m.location = address
	m.state = STATE_RUNNING
	m.failure = nil
	return
}

// State returns the run state.
func (m *Machine) State() State {
	return m.state
}

// LoadProgram writes words into memory starting at address 0.
// Memory is untouched if the program does not fit.
func (m *Machine) LoadProgram(words []Word) (err error) {
	if len(words) > MEMORY_SIZE {
		err = ErrProgramSize(len(words))
		return
	}

	copy(m.memory[:], words)
	return
}

// String returns the register state as a string.
func (m *Machine) String() (text string) {
	regs := []string{
		"a", "x",
		"i1", "i2", "i3", "i4", "i5", "i6",
		"cmp", "loc", "state",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "a":
			strval = fmt.Sprintf("%+011d", m.a)
		case "x":
			strval = fmt.Sprintf("%+011d", m.x)
		case "i1", "i2", "i3", "i4", "i5", "i6":
			strval = fmt.Sprintf("%+011d", m.index[reg[1]-'1'])
		case "cmp":
			strval = fmt.Sprintf("%+011d", m.comparison)
		case "loc":
			strval = fmt.Sprintf("%04d", m.location)
		case "state":
			strval = m.state.String()
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Dump writes memory words [from, to) to w, ten words per row.
func (m *Machine) Dump(w io.Writer, from, to int) (err error) {
	if !validAddress(from) {
		err = ErrAddress(from)
		return
	}
	if to < from || to > MEMORY_SIZE {
		err = ErrAddress(to)
		return
	}

	for row := from - from%10; row < to; row += 10 {
		_, err = fmt.Fprintf(w, "%04d:", row)
		if err != nil {
			return
		}
		for address := row; address < row+10 && address < to; address++ {
			if address < from {
				_, err = fmt.Fprintf(w, " %11s", "")
			} else {
				_, err = fmt.Fprintf(w, " %+011d", m.memory[address])
			}
			if err != nil {
				return
			}
		}
		_, err = fmt.Fprintln(w)
		if err != nil {
			return
		}
	}

	return
}
