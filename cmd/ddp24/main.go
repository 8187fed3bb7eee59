// ddp24 emulates the DDP-24 guidance computer of the Viking Mars landers.
package main

import (
	"errors"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/ezrec/ddp24/emulator"
	"github.com/ezrec/ddp24/monitor"
	"github.com/ezrec/ddp24/translate"
)

var f = translate.From

func main() {
	var cli struct {
		Run runCmd `cmd:"" default:"1" help:"Run a DDP-24 memory image."`
	}

	ctx := kong.Parse(&cli,
		kong.Name("ddp24"),
		kong.Description(f("DDP-24 emulator - Viking Mars lander guidance computer")))
	err := ctx.Run(&kong.Context{})
	ctx.FatalIfErrorf(err)
}

type runCmd struct {
	Image       string `arg:"" optional:"" type:"existingfile" help:"Binary memory image (3-byte big-endian words)."`
	Interactive bool   `short:"i" help:"Enter the interactive monitor."`
	Dump        bool   `short:"d" help:"Dump machine state after execution."`
	Budget      int    `short:"b" default:"0" help:"Cycle budget (0 runs until halt)."`
	Verbose     bool   `short:"v" help:"Verbose execution trace."`
}

func (r *runCmd) Run(ctx *kong.Context) error {
	emu := emulator.NewEmulator()
	emu.Verbose = r.Verbose
	emu.Cpu.Verbose = r.Verbose

	if r.Image != "" {
		words, err := emu.LoadImageFile(r.Image)
		if err != nil {
			return err
		}
		fmt.Printf(f("Loaded %v words from %v\n"), words, r.Image)
	} else if !r.Interactive {
		return errors.New(f("nothing to do without an image or --interactive"))
	}

	if r.Interactive {
		return monitor.NewMonitor(emu).Interact()
	}

	emu.Run(r.Budget)
	if r.Dump {
		fmt.Print(emu.Cpu)
	}

	return nil
}
