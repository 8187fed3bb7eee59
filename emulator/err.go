package emulator

import (
	"errors"

	"github.com/ezrec/ddp24/translate"
)

var f = translate.From

var (
	ErrImageRead = errors.New(f("image read failed"))
)

// ErrImage indicates the source of a memory image load failure.
type ErrImage struct {
	Path string
	Err  error
}

func (err *ErrImage) Error() string {
	return f("image %v: %v", err.Path, err.Err)
}

func (err *ErrImage) Unwrap() error {
	return err.Err
}
