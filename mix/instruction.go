package mix

import (
	"fmt"
)

// LoadA sets A to the word at address.
func (m *Machine) LoadA(address int) (err error) {
	value, err := m.Read(address)
	if err != nil {
		return
	}

	m.a = value
	return
}

// StoreA writes A to address.
func (m *Machine) StoreA(address int) (err error) {
	return m.Write(address, m.a)
}

// Add adds the word at address to A, wrapping on overflow.
func (m *Machine) Add(address int) (err error) {
	value, err := m.Read(address)
	if err != nil {
		return
	}

	m.a += value
	return
}

// Sub subtracts the word at address from A, wrapping on overflow.
func (m *Machine) Sub(address int) (err error) {
	value, err := m.Read(address)
	if err != nil {
		return
	}

	m.a -= value
	return
}

// Div divides A by the word at address, truncating toward zero.
func (m *Machine) Div(address int) (err error) {
	value, err := m.Read(address)
	if err != nil {
		return
	}
	if value == 0 {
		err = ErrDivisor(address)
		return
	}

	// Go defines MinInt32 / -1 as MinInt32.
	m.a /= value
	return
}

// Jump moves the location to address.
func (m *Machine) Jump(address int) (err error) {
	if !validAddress(address) {
		err = ErrAddress(address)
		return
	}

	m.location = address
	return
}

// JumpZero moves the location to address if A is zero.
func (m *Machine) JumpZero(address int) (jumped bool, err error) {
	if m.a != 0 {
		return
	}

	err = m.Jump(address)
	jumped = err == nil
	return
}

// JumpNeg moves the location to address if A is negative.
func (m *Machine) JumpNeg(address int) (jumped bool, err error) {
	if m.a >= 0 {
		return
	}

	err = m.Jump(address)
	jumped = err == nil
	return
}

// Compare sets the comparison flag to A minus the word at address.
func (m *Machine) Compare(address int) (err error) {
	value, err := m.Read(address)
	if err != nil {
		return
	}

	m.comparison = m.a - value
	return
}

// Instruction is a decoded instruction. The set of instructions is closed:
// only the types in this package implement it.
type Instruction interface {
	Opcode() Opcode
	Address() int

	// execute applies the instruction, and reports if it set the location.
	execute(m *Machine) (jumped bool, err error)
}

// Operand is the direct memory address of an instruction.
type Operand int

// Address returns the operand as a memory address.
func (o Operand) Address() int {
	return int(o)
}

type (
	Halt     struct{}
	LoadA    struct{ Operand }
	StoreA   struct{ Operand }
	Add      struct{ Operand }
	Sub      struct{ Operand }
	Div      struct{ Operand }
	Jump     struct{ Operand }
	JumpZero struct{ Operand }
	JumpNeg  struct{ Operand }
	Compare  struct{ Operand }
)

func (Halt) Opcode() Opcode     { return OP_HLT }
func (LoadA) Opcode() Opcode    { return OP_LDA }
func (StoreA) Opcode() Opcode   { return OP_STA }
func (Add) Opcode() Opcode      { return OP_ADD }
func (Sub) Opcode() Opcode      { return OP_SUB }
func (Div) Opcode() Opcode      { return OP_DIV }
func (Jump) Opcode() Opcode     { return OP_JMP }
func (JumpZero) Opcode() Opcode { return OP_JZ }
func (JumpNeg) Opcode() Opcode  { return OP_JL }
func (Compare) Opcode() Opcode  { return OP_CMP }

// Address of HLT is always 0.
func (Halt) Address() int { return 0 }

func (Halt) execute(m *Machine) (bool, error) {
	return false, nil
}

func (in LoadA) execute(m *Machine) (bool, error) {
	return false, m.LoadA(in.Address())
}

func (in StoreA) execute(m *Machine) (bool, error) {
	return false, m.StoreA(in.Address())
}

func (in Add) execute(m *Machine) (bool, error) {
	return false, m.Add(in.Address())
}

func (in Sub) execute(m *Machine) (bool, error) {
	return false, m.Sub(in.Address())
}

func (in Div) execute(m *Machine) (bool, error) {
	return false, m.Div(in.Address())
}

func (in Jump) execute(m *Machine) (bool, error) {
	err := m.Jump(in.Address())
	return err == nil, err
}

func (in JumpZero) execute(m *Machine) (bool, error) {
	return m.JumpZero(in.Address())
}

func (in JumpNeg) execute(m *Machine) (bool, error) {
	return m.JumpNeg(in.Address())
}

func (in Compare) execute(m *Machine) (bool, error) {
	return false, m.Compare(in.Address())
}

// NewInstruction builds the instruction for an opcode and operand address.
// The address of HLT is ignored.
func NewInstruction(op Opcode, address int) (in Instruction, err error) {
	operand := Operand(address)

	switch op {
	case OP_HLT:
		in = Halt{}
	case OP_LDA:
		in = LoadA{operand}
	case OP_STA:
		in = StoreA{operand}
	case OP_ADD:
		in = Add{operand}
	case OP_SUB:
		in = Sub{operand}
	case OP_DIV:
		in = Div{operand}
	case OP_JMP:
		in = Jump{operand}
	case OP_JZ:
		in = JumpZero{operand}
	case OP_JL:
		in = JumpNeg{operand}
	case OP_CMP:
		in = Compare{operand}
	default:
		err = ErrOpcode(op)
	}

	return
}

// Decode builds the instruction for an opcode word and its operand word.
func Decode(opcode Word, operand Word) (in Instruction, err error) {
	return NewInstruction(Opcode(opcode), int(operand))
}

// Encode returns the machine words of an instruction.
func Encode(in Instruction) (words []Word) {
	words = []Word{Word(in.Opcode())}
	if in.Opcode().Size() > 1 {
		words = append(words, Word(in.Address()))
	}

	return
}

// Format returns the assembly text of an instruction.
func Format(in Instruction) string {
	if in.Opcode().Size() == 1 {
		return in.Opcode().String()
	}

	return fmt.Sprintf("%v %v", in.Opcode(), in.Address())
}
