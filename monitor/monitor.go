// Package monitor implements the interactive front panel of the
// emulator: stepping, running, dumping, and examining or depositing
// memory from a command stream.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"golang.org/x/term"

	"github.com/ezrec/ddp24/cpu"
	"github.com/ezrec/ddp24/emulator"
)

// Monitor drives an emulator one command at a time. Numeric arguments
// are octal literals, or $(...) Starlark expressions with the machine
// constants and current register values predeclared.
type Monitor struct {
	Emu *emulator.Emulator // The machine under the panel.
	In  io.Reader          // Command stream.
	Out io.Writer          // Command responses.

	Prompt string // Shown before each command when In is a terminal.
}

// NewMonitor creates a monitor attached to the standard streams.
func NewMonitor(emu *emulator.Emulator) (mon *Monitor) {
	mon = &Monitor{
		Emu:    emu,
		In:     os.Stdin,
		Out:    os.Stdout,
		Prompt: "ddp24> ",
	}

	return
}

// interactive reports whether the monitor input is a terminal.
func (mon *Monitor) interactive() bool {
	type fder interface{ Fd() uintptr }

	inf, ok := mon.In.(fder)
	return ok && term.IsTerminal(int(inf.Fd()))
}

// Interact reads and executes commands until quit or end of input.
func (mon *Monitor) Interact() (err error) {
	prompt := mon.Prompt
	if !mon.interactive() {
		prompt = ""
	}

	fmt.Fprintln(mon.Out, f("DDP-24 monitor. Commands: s(tep), r(un) [budget], d(ump), m <addr>, w <addr> <value>, x <word>, q(uit)"))

	scanner := bufio.NewScanner(mon.In)
	for {
		fmt.Fprint(mon.Out, prompt)
		if !scanner.Scan() {
			break
		}

		quit, cmdErr := mon.Command(scanner.Text())
		if cmdErr != nil {
			fmt.Fprintln(mon.Out, cmdErr)
		}
		if quit {
			break
		}
	}

	return scanner.Err()
}

// Command executes a single monitor command line.
func (mon *Monitor) Command(line string) (quit bool, err error) {
	// Split on spaces, but keep a $(...) expression with spaces in it
	// together as one word.
	var words []string
	depth := 0
	for _, field := range strings.Fields(line) {
		if depth > 0 {
			words[len(words)-1] += " " + field
		} else {
			words = append(words, field)
		}
		depth += strings.Count(field, "(") - strings.Count(field, ")")
	}
	if len(words) == 0 {
		return
	}

	emu := mon.Emu

	switch words[0] {
	case "s", "step":
		emu.Step()
		fmt.Fprintf(mon.Out, "PC=%05o A=%08o B=%08o\n",
			uint32(emu.PC), uint32(emu.A), uint32(emu.B))

	case "r", "run":
		var budget uint32
		if len(words) > 1 {
			budget, err = mon.value(words[1])
			if err != nil {
				return
			}
		}
		total := emu.Run(int(budget))
		if emu.Halted {
			fmt.Fprintf(mon.Out, f("Halted after %v cycles\n"), emu.Cycles)
		} else {
			fmt.Fprintf(mon.Out, f("Budget expired after %v cycles\n"), total)
		}

	case "d", "dump":
		fmt.Fprint(mon.Out, emu.Cpu)

	case "m", "mem":
		if len(words) < 2 {
			err = ErrAddressMissing
			return
		}
		var addr uint32
		addr, err = mon.value(words[1])
		if err != nil {
			return
		}
		addr &= uint32(cpu.ADDR_MASK)
		fmt.Fprintf(mon.Out, "[%05o] = %08o\n", addr, uint32(emu.Read(cpu.Word(addr))))

	case "w", "write":
		if len(words) < 2 {
			err = ErrAddressMissing
			return
		}
		if len(words) < 3 {
			err = ErrValueMissing
			return
		}
		var addr, value uint32
		addr, err = mon.value(words[1])
		if err != nil {
			return
		}
		value, err = mon.value(words[2])
		if err != nil {
			return
		}
		emu.Write(cpu.Word(addr), cpu.Word(value))

	case "x", "exec":
		if len(words) < 2 {
			err = ErrValueMissing
			return
		}
		var value uint32
		value, err = mon.value(words[1])
		if err != nil {
			return
		}
		emu.Execute(cpu.Word(value))
		fmt.Fprintf(mon.Out, "PC=%05o A=%08o B=%08o\n",
			uint32(emu.PC), uint32(emu.A), uint32(emu.B))

	case "q", "quit":
		quit = true

	default:
		err = ErrCommandUnknown
	}

	return
}

// value evaluates a numeric command argument.
func (mon *Monitor) value(arg string) (value uint32, err error) {
	if strings.HasPrefix(arg, "$(") && strings.HasSuffix(arg, ")") {
		return mon.eval(arg[2 : len(arg)-1])
	}

	parsed, err := strconv.ParseUint(arg, 8, 32)
	if err != nil {
		err = ErrOctal(arg)
		return
	}
	value = uint32(parsed)

	return
}

// eval does $(...) expression evaluations against the machine state.
func (mon *Monitor) eval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{}
	for key, val := range mon.Emu.Defines() {
		pred[key] = starlark.MakeInt64(int64(val))
	}

	mach := mon.Emu.Cpu
	pred["a"] = starlark.MakeInt64(int64(mach.A))
	pred["b"] = starlark.MakeInt64(int64(mach.B))
	pred["x1"] = starlark.MakeInt64(int64(mach.X[1]))
	pred["x2"] = starlark.MakeInt64(int64(mach.X[2]))
	pred["x3"] = starlark.MakeInt64(int64(mach.X[3]))
	pred["pc"] = starlark.MakeInt64(int64(mach.PC))
	pred["cycles"] = starlark.MakeInt64(int64(mach.Cycles))

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrExpression(expr)
		return
	}
	value = uint32(st_int64)

	return
}
