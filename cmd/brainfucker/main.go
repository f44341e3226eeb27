package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/PickledChair/BrainFucker/emulator"
	"github.com/PickledChair/BrainFucker/io"
)

const usage = `Brainfuck Interpreter - interactive mode
    Usage: Input a brainfuck code, then press 'Enter'.
           For terminating this interpreter, input 'q'
           then press 'Enter'.`

func main() {
	var compile string
	var input string
	var output string
	var verbose bool
	var expand bool
	var maxRun int
	defines := map[string]string{}

	flag.StringVar(&compile, "c", "", ".bf file to run; interactive mode if not set")
	flag.StringVar(&input, "i", "-", "Program input")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&expand, "x", false, "Expand $(...) expressions")
	flag.IntVar(&maxRun, "run", 0, "Longest run folded into one instruction (0 is unbounded)")
	flag.Func("D", "Define `name=value` for $(...) expressions", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("%v: expected name=value", arg)
		}
		defines[name] = value
		return nil
	})

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Compiler.Expand = expand
	emu.Compiler.MaxRun = maxRun
	for name, value := range defines {
		emu.Define(name, value)
	}

	inf := os.Stdin
	if input != "-" {
		var err error
		inf, err = os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
	}

	ouf := os.Stdout
	if output != "-" {
		var err error
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
	}

	tape := &io.Tape{
		Input:  inf,
		Output: ouf,
	}
	emu.Console = tape

	// Prompts only make sense for a person at a terminal.
	interactive := term.IsTerminal(int(inf.Fd()))
	if interactive {
		tape.Prompt = os.Stdout
	}

	if len(compile) == 0 {
		if interactive {
			fmt.Println(usage)
		}

		err := emu.Interact(func(err error) {
			_ = tape.Newline()
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		})
		if err != nil {
			log.Fatal(err)
		}

		_ = tape.Newline()
		if interactive {
			fmt.Println("See you!")
		}
		return
	}

	if interactive {
		fmt.Println("Brainfuck Interpreter - file execution mode")
	}

	source, err := os.ReadFile(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if len(strings.TrimSpace(string(source))) == 0 {
		fmt.Println("This file is empty.")
		return
	}

	err = emu.Load(string(source))
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	err = emu.Run()
	if interactive {
		_ = tape.Newline()
	}
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
}
