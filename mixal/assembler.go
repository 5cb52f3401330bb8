// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package mixal assembles MIXAL-style source text into mix programs.
//
// Each line is an optional list of "label:" definitions followed by one
// statement. A '#' starts a comment.
//
//	NAME IS expr    define NAME as the value of expr
//	LOC expr        continue assembly at location expr
//	CON expr        emit expr as a data word
//	END expr        start execution at location expr
//	HLT             emit a halt instruction
//	OP expr         emit instruction OP with address expr
//
// Expressions are Starlark integer expressions over labels, equates and
// predefines. Labels may be used before they are defined.
package mixal

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math"
	"regexp"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/mixvm/mix"
)

// Assembler is a two pass assembler for the mix machine.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string   // Predefines
	Label     map[string]int      // Map of labels to locations.
	Equate    map[string]mix.Word // Map of IS equates.

	used map[int]int // Map of assembled locations to line numbers.
}

// statement is a line that generates words, resolved in the second pass.
type statement struct {
	lineno   int
	line     string
	words    []string
	location int
	con      bool
	end      bool
	op       mix.Opcode
	operand  string
}

var nameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Predefine defines a new equate or redefines an existing equate.
// Values that are not integer expressions are ignored.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// eval evaluates an expression with all labels and equates known so far.
func (asm *Assembler) eval(expr string) (value mix.Word, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range asm.Equate {
		pred[key] = starlark.MakeInt(int(value))
	}
	for key, location := range asm.Label {
		pred[key] = starlark.MakeInt(location)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrParseExpression{Expr: expr, Err: err}
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrParseExpression{Expr: expr}
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < math.MinInt32 || st_int64 > math.MaxInt32 {
		err = &ErrParseExpression{Expr: expr}
		return
	}

	value = mix.Word(st_int64)
	return
}

// define records a label or equate name.
func (asm *Assembler) define(name string) (err error) {
	if !nameRegexp.MatchString(name) {
		err = ErrNameInvalid
		return
	}
	if _, ok := asm.Label[name]; ok {
		err = ErrLabelDuplicate
		return
	}
	if _, ok := asm.Equate[name]; ok {
		err = ErrEquateDuplicate
		return
	}

	return
}

// reserve claims size words at location, and advances location past them.
func (asm *Assembler) reserve(lineno int, location *int, size int) (err error) {
	if *location+size > mix.MEMORY_SIZE {
		err = ErrLocationInvalid
		return
	}

	for n := *location; n < *location+size; n++ {
		if other, ok := asm.used[n]; ok {
			if asm.Verbose {
				log.Printf("%04d: already assembled by line %d", n, other)
			}
			err = ErrLocationInvalid
			return
		}
		asm.used[n] = lineno
	}

	*location += size
	return
}

// parseLine parses a single line in the first pass, returning the
// statement to resolve in the second pass, if any.
func (asm *Assembler) parseLine(text string, lineno int, location *int) (stmt *statement, err error) {
	line, _, _ := strings.Cut(text, "#")
	words := strings.Fields(line)

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := strings.TrimSuffix(words[0], ":")
		err = asm.define(label)
		if err != nil {
			if err == ErrEquateDuplicate {
				err = ErrLabelDuplicate
			}
			return
		}
		asm.Label[label] = *location
		words = words[1:]
	}

	if len(words) == 0 {
		return
	}

	// NAME IS expr
	if len(words) > 1 && strings.ToUpper(words[1]) == "IS" {
		if len(words) < 3 {
			err = ErrEquateSyntax
			return
		}
		err = asm.define(words[0])
		if err != nil {
			if err == ErrLabelDuplicate {
				err = ErrEquateDuplicate
			}
			return
		}
		var value mix.Word
		value, err = asm.eval(strings.Join(words[2:], " "))
		if err != nil {
			return
		}
		asm.Equate[words[0]] = value
		return
	}

	stmt = &statement{
		lineno:   lineno,
		line:     strings.TrimSpace(line),
		words:    words,
		location: *location,
		operand:  strings.Join(words[1:], " "),
	}

	switch strings.ToUpper(words[0]) {
	case "LOC":
		stmt = nil
		if len(words) < 2 {
			err = ErrOperandMissing
			return
		}
		var value mix.Word
		value, err = asm.eval(strings.Join(words[1:], " "))
		if err != nil {
			return
		}
		if value < 0 || value >= mix.MEMORY_SIZE {
			err = ErrLocationInvalid
			return
		}
		*location = int(value)
		return
	case "CON":
		stmt.con = true
		err = asm.reserve(lineno, location, 1)
	case "END":
		stmt.end = true
	default:
		op, ok := mix.LookupOpcode(words[0])
		if !ok {
			stmt = nil
			err = ErrInstructionInvalid
			return
		}
		stmt.op = op
		err = asm.reserve(lineno, location, op.Size())
	}
	if err != nil {
		stmt = nil
		return
	}

	// Only HLT has no operand.
	operand := stmt.con || stmt.end || stmt.op.Size() > 1
	switch {
	case operand && len(words) == 1:
		stmt = nil
		err = ErrOperandMissing
	case !operand && len(words) > 1:
		stmt = nil
		err = ErrOperandExtra
	}

	return
}

// resolve evaluates a statement's operand in the second pass.
func (asm *Assembler) resolve(stmt *statement, prog *mix.Program) (err error) {
	var value mix.Word
	if len(stmt.operand) > 0 {
		value, err = asm.eval(stmt.operand)
		if err != nil {
			return
		}
	}

	var codes []mix.Word
	switch {
	case stmt.end:
		if value < 0 || value >= mix.MEMORY_SIZE {
			err = ErrLocationInvalid
			return
		}
		prog.Start = int(value)
		return
	case stmt.con:
		codes = []mix.Word{value}
	default:
		var in mix.Instruction
		in, err = mix.NewInstruction(stmt.op, int(value))
		if err != nil {
			return
		}
		codes = mix.Encode(in)
	}

	if asm.Verbose {
		log.Printf("%04d: %v", stmt.location, codes)
	}

	prog.Lines = append(prog.Lines, mix.Line{
		LineNo:   stmt.lineno,
		Location: stmt.location,
		Words:    stmt.words,
		Codes:    codes,
	})

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *mix.Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = make(map[string]int)
	asm.Equate = make(map[string]mix.Word)
	asm.used = make(map[int]int)
	for equ, str := range asm.predefine {
		value, _err := asm.eval(str)
		if _err != nil {
			// Ignore non-integer predefines.
			continue
		}
		asm.Equate[equ] = value
	}

	// First pass: locations, labels and equates.
	var stmts []*statement
	location := 0
	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		var stmt *statement
		stmt, err = asm.parseLine(line, lineno, &location)
		if err != nil {
			return
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	// Second pass: operands.
	prog = &mix.Program{}
	for _, stmt := range stmts {
		lineno = stmt.lineno
		line = stmt.line
		err = asm.resolve(stmt, prog)
		if err != nil {
			prog = nil
			return
		}
	}

	return
}

// Listing returns the location, words and source of each assembled line.
func Listing(prog *mix.Program) (text string) {
	for _, line := range prog.Lines {
		codes := make([]string, len(line.Codes))
		for n, code := range line.Codes {
			codes[n] = fmt.Sprintf("%+06d", code)
		}
		text += fmt.Sprintf("%04d: %-16s %3d: %v\n",
			line.Location, strings.Join(codes, " "), line.LineNo, strings.Join(line.Words, " "))
	}

	return
}
