package mix

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMachine_New(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	assert.Equal(Word(0), m.A())
	assert.Equal(Word(0), m.X())
	assert.Equal(Word(0), m.Comparison())
	assert.Equal(0, m.Location())
	assert.Equal(STATE_RUNNING, m.State())

	for n := range INDEX_COUNT {
		value, err := m.Index(n)
		assert.NoError(err)
		assert.Equal(Word(0), value)
	}

	for address := range MEMORY_SIZE {
		value, err := m.Read(address)
		assert.NoError(err)
		assert.Equal(Word(0), value)
	}
}

func TestMachine_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	for address := range MEMORY_SIZE {
		value := Word(address*7 - 9000)
		assert.NoError(m.Write(address, value))
		got, err := m.Read(address)
		assert.NoError(err)
		assert.Equal(value, got)
	}
}

func TestMachine_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.SetA(5)
	assert.NoError(m.Write(0, 11))
	assert.NoError(m.SetLocation(17))
	before := *m

	for _, address := range []int{-1, -4000, MEMORY_SIZE, MEMORY_SIZE + 1, 1 << 30} {
		_, err := m.Read(address)
		assert.ErrorIs(err, ErrOutOfRange, address)

		err = m.Write(address, 99)
		assert.ErrorIs(err, ErrOutOfRange, address)

		err = m.SetLocation(address)
		assert.ErrorIs(err, ErrOutOfRange, address)

		var ea ErrAddress
		assert.True(errors.As(err, &ea))
		assert.Equal(address, int(ea))
	}

	assert.Equal(before, *m)
}

func TestMachine_Registers(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	regs := []Register{REG_A, REG_X, REG_I1, REG_I2, REG_I3, REG_I4, REG_I5, REG_I6}
	for n, reg := range regs {
		assert.NoError(m.WriteRegister(reg, Word(100+n)), reg.String())
	}

	assert.Equal(Word(100), m.A())
	assert.Equal(Word(101), m.X())
	for n := range INDEX_COUNT {
		value, err := m.Index(n)
		assert.NoError(err)
		assert.Equal(Word(102+n), value)
	}

	for n, reg := range regs {
		value, err := m.ReadRegister(reg)
		assert.NoError(err, reg.String())
		assert.Equal(Word(100+n), value, reg.String())
	}

	m.SetX(-3)
	assert.Equal(Word(-3), m.X())
}

func TestMachine_IndexOutOfRange(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	before := *m

	for _, n := range []int{-1, INDEX_COUNT, 100} {
		_, err := m.Index(n)
		assert.ErrorIs(err, ErrIndexOutOfRange)
		assert.ErrorIs(m.SetIndex(n, 1), ErrIndexOutOfRange)
	}

	for _, reg := range []Register{Register(-1), REG_I6 + 1, Register(42)} {
		_, err := m.ReadRegister(reg)
		assert.ErrorIs(err, ErrIndexOutOfRange, reg.String())
		assert.ErrorIs(m.WriteRegister(reg, 1), ErrIndexOutOfRange, reg.String())
	}

	assert.Equal(before, *m)
}

func TestMachine_LoadProgram(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	words := make([]Word, MEMORY_SIZE)
	for n := range words {
		words[n] = Word(n + 1)
	}
	assert.NoError(m.LoadProgram(words))
	for n := range words {
		value, err := m.Read(n)
		assert.NoError(err)
		assert.Equal(Word(n+1), value)
	}

	m.Reset()
	before := *m

	err := m.LoadProgram(make([]Word, MEMORY_SIZE+1))
	assert.ErrorIs(err, ErrProgramTooLarge)
	var es ErrProgramSize
	assert.True(errors.As(err, &es))
	assert.Equal(MEMORY_SIZE+1, int(es))
	assert.Equal(before, *m)
}

func TestMachine_LoadProgram_Partial(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	assert.NoError(m.Write(5, 55))
	assert.NoError(m.LoadProgram([]Word{1, 2, 3}))

	for address, want := range []Word{1, 2, 3, 0, 0, 55} {
		value, err := m.Read(address)
		assert.NoError(err)
		assert.Equal(want, value)
	}
}

func TestMachine_Reset(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.SetA(1)
	m.SetX(2)
	assert.NoError(m.SetIndex(5, 3))
	assert.NoError(m.Write(3999, 4))
	assert.NoError(m.SetLocation(10))

	m.Reset()
	assert.Equal(*NewMachine(), *m)
}

func TestMachine_String(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.SetA(-42)
	assert.NoError(m.SetIndex(2, 7))
	assert.NoError(m.SetLocation(12))

	text := m.String()
	assert.Contains(text, "    a: -0000000042\n")
	assert.Contains(text, "   i3: +0000000007\n")
	assert.Contains(text, "  loc: 0012\n")
	assert.Contains(text, "state: running\n")
	assert.Equal(11, strings.Count(text, "\n"))
}

func TestMachine_Dump(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	assert.NoError(m.Write(12, 123))

	out := &bytes.Buffer{}
	assert.NoError(m.Dump(out, 10, 13))
	assert.Equal("0010: +0000000000 +0000000000 +0000000123\n", out.String())

	out.Reset()
	assert.NoError(m.Dump(out, 12, 20))
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(lines, 1)
	assert.True(strings.HasPrefix(lines[0], "0010: "))
	assert.Contains(lines[0], "+0000000123")

	out.Reset()
	assert.NoError(m.Dump(out, 0, MEMORY_SIZE))
	assert.Equal(MEMORY_SIZE/10, strings.Count(out.String(), "\n"))

	assert.ErrorIs(m.Dump(out, -1, 5), ErrOutOfRange)
	assert.ErrorIs(m.Dump(out, 5, MEMORY_SIZE+1), ErrOutOfRange)
	assert.ErrorIs(m.Dump(out, 5, 4), ErrOutOfRange)
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{}
	for key, value := range Defines() {
		defines[key] = value
	}

	assert.Equal("4000", defines["MEMORY_SIZE"])
	assert.Equal("6", defines["INDEX_COUNT"])
}
