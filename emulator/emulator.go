// Package emulator couples the DDP-24 processor core with the binary
// image loader and host-facing helpers.
package emulator

import (
	"errors"
	"io"
	"iter"
	"log"
	"maps"
	"os"

	"github.com/ezrec/ddp24/cpu"
	"github.com/ezrec/ddp24/internal"
)

// WORD_BYTES is the size of one memory word in the image format: three
// bytes, big-endian.
const WORD_BYTES = 3

var _emulator_defines = map[string]uint32{
	"WORD_BYTES": WORD_BYTES,
}

// Emulator is a DDP-24 machine plus the host glue around it.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // The processor simulation.
}

// NewEmulator creates an emulator with a freshly initialized machine:
// registers, flags, and memory all zero.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, uint32] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// LoadImage reads a flat binary image of 3-byte big-endian words into
// memory starting at address zero. Loading stops at end of input or when
// memory is full; a trailing partial word is dropped. Registers and the
// program counter are not touched. Returns the number of words loaded.
func (emu *Emulator) LoadImage(r io.Reader) (words int, err error) {
	var buf [WORD_BYTES]byte

	for words < cpu.MEM_SIZE {
		_, err = io.ReadFull(r, buf[:])
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				err = nil
			} else {
				err = errors.Join(ErrImageRead, err)
			}
			return
		}

		word := cpu.Word(buf[0])<<16 | cpu.Word(buf[1])<<8 | cpu.Word(buf[2])
		emu.Cpu.Memory[words] = word
		words++
	}

	return
}

// LoadImageFile loads a binary memory image from a file. Failures carry
// the image path as an ErrImage.
func (emu *Emulator) LoadImageFile(path string) (words int, err error) {
	defer func() {
		if err != nil {
			err = &ErrImage{Path: path, Err: err}
		}
	}()

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	words, err = emu.LoadImage(inf)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %v words from %v", words, path)
	}

	return
}
