package mix

import (
	"iter"
)

// Line is a line of assembled source with the words it generated.
type Line struct {
	LineNo   int
	Location int
	Words    []string
	Codes    []Word
}

// Program is an assembled program listing.
type Program struct {
	Lines []Line
	Start int // Location of the first instruction to execute.
}

// Debug is the source line at a location, and the index of the word in its codes.
type Debug struct {
	*Line
	Index int
}

// Debug finds the source line that generated the word at location.
func (prog *Program) Debug(location int) (dbg Debug) {
	for n, line := range prog.Lines {
		if location >= line.Location && location < line.Location+len(line.Codes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: location - line.Location,
			}
			break
		}
	}

	return
}

// Codes iterates over the location and value of every generated word.
func (prog *Program) Codes() iter.Seq2[int, Word] {
	return func(yield func(location int, code Word) bool) {
		for _, line := range prog.Lines {
			for n, code := range line.Codes {
				if !yield(line.Location+n, code) {
					return
				}
			}
		}
	}
}

// Binary returns the memory image of the program, starting at address 0.
// Words between generated locations are zero.
func (prog *Program) Binary() (bins []Word) {
	size := 0
	for location := range prog.Codes() {
		size = max(size, location+1)
	}

	bins = make([]Word, size)
	for location, code := range prog.Codes() {
		bins[location] = code
	}

	return
}
