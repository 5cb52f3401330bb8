// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/mixvm/internal"
	"github.com/ezrec/mixvm/mix"
)

// Emulator state. Machine + program listing.
type Emulator struct {
	Verbose      bool         // If set, enables verbose logging.
	*mix.Machine              // Reference to the machine simulation.
	Program      *mix.Program // Reference to the currently loaded program listing.
	MaxTicks     int          // If non-zero, the limit of ticks for Run.

	ticks int
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Machine: mix.NewMachine(),
		Program: &mix.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	defines := map[string]string{
		"MAX_TICKS": fmt.Sprintf("%v", emu.MaxTicks),
	}

	return internal.IterSeq2Concat(maps.All(defines),
		mix.Defines(),
	)
}

// Reset the machine, load the program, and move to its start.
func (emu *Emulator) Reset() (err error) {
	emu.Machine.Reset()
	emu.ticks = 0

	err = emu.Machine.LoadProgram(emu.Program.Binary())
	if err != nil {
		return
	}

	err = emu.Machine.SetLocation(emu.Program.Start)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: reset, start at %04d", emu.Program.Start)
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.ticks
}

// LineNo returns the source line number of the current location.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Machine.Location())
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	location := emu.Machine.Location()
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Location: location, Err: err}
		}
	}()

	if emu.Verbose {
		in, _err := emu.Machine.Fetch()
		if _err == nil {
			log.Printf("%04d: %v (A=%d)", location, mix.Format(in), emu.Machine.A())
		}
	}

	if emu.Machine.State() == mix.STATE_HALTED {
		done = true
		return
	}

	done, err = emu.Machine.Step()
	if err != nil {
		return
	}

	emu.ticks++

	if done && emu.Verbose {
		log.Printf("emulator: halted after %d ticks", emu.ticks)
	}

	return
}

// Run ticks until HLT, an error, or MaxTicks.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		if emu.MaxTicks > 0 && emu.ticks >= emu.MaxTicks {
			err = &ErrRuntime{LineNo: emu.LineNo(), Location: emu.Machine.Location(), Err: ErrTickLimit}
			return
		}
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
