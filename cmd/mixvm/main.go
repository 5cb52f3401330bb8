// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/mixvm/emulator"
	"github.com/ezrec/mixvm/mixal"
	"github.com/ezrec/mixvm/translate"
)

func main() {
	var compile string
	var ticks int
	var verbose bool
	var listing bool
	var registers bool
	var memory string
	var lang string

	flag.StringVar(&compile, "c", "", ".mixal file to assemble and run")
	flag.IntVar(&ticks, "n", 0, "Maximum instructions to execute (0 is unlimited)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&listing, "l", false, "Print the assembly listing, do not execute")
	flag.BoolVar(&registers, "r", false, "Print registers after execution")
	flag.StringVar(&memory, "m", "", "Print memory FROM:TO after execution")
	flag.StringVar(&lang, "lang", "", "Locale for messages (default from the system)")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		translate.Use(lang)
	}

	if len(compile) == 0 {
		log.Fatalf("%v: -c is required", os.Args[0])
	}

	var from, to int
	if len(memory) != 0 {
		_, err := fmt.Sscanf(memory, "%d:%d", &from, &to)
		if err != nil {
			log.Fatalf("-m %v: %v", memory, err)
		}
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.MaxTicks = ticks

	inf, err := os.Open(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	defer inf.Close()

	asm := &mixal.Assembler{Verbose: verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}
	emu.Program, err = asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if listing {
		fmt.Print(mixal.Listing(emu.Program))
		return
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	err = emu.Run()

	if registers {
		fmt.Print(emu.Machine.String())
	}
	if len(memory) != 0 {
		_err := emu.Machine.Dump(os.Stdout, from, to)
		if _err != nil {
			log.Printf("-m %v: %v", memory, _err)
		}
	}

	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
}
