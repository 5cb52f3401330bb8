package mix

// Fetch decodes the instruction at the current location without
// changing any machine state.
func (m *Machine) Fetch() (in Instruction, err error) {
	opcode, err := m.Read(m.location)
	if err != nil {
		return
	}

	op := Opcode(opcode)
	if !op.Valid() {
		err = ErrOpcode(opcode)
		return
	}

	var operand Word
	if op.Size() > 1 {
		operand, err = m.Read(m.location + 1)
		if err != nil {
			return
		}
	}

	return NewInstruction(op, int(operand))
}

// Step executes a single instruction, and reports if it was HLT.
//
// After HLT the location rests on the following word. Every other
// instruction moves to the word after its operand, unless it jumped.
// Any error moves the machine to STATE_FAILED and leaves all
// registers and memory untouched.
func (m *Machine) Step() (halted bool, err error) {
	switch m.state {
	case STATE_HALTED:
		halted = true
		return
	case STATE_FAILED:
		err = m.failure
		return
	}

	defer func() {
		if err != nil {
			m.state = STATE_FAILED
			m.failure = err
		}
	}()

	in, err := m.Fetch()
	if err != nil {
		return
	}

	next := m.location + in.Opcode().Size()

	jumped, err := in.execute(m)
	if err != nil {
		return
	}

	if _, ok := in.(Halt); ok {
		m.state = STATE_HALTED
		halted = true
	}

	if !jumped {
		m.location = next
	}

	return
}

// Run steps until HLT, or returns the first error.
func (m *Machine) Run() (err error) {
	for {
		var halted bool
		halted, err = m.Step()
		if err != nil || halted {
			return
		}
	}
}
