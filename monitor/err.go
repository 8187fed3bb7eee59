package monitor

import (
	"errors"

	"github.com/ezrec/ddp24/translate"
)

var f = translate.From

var (
	ErrCommandUnknown = errors.New(f("unknown command"))
	ErrAddressMissing = errors.New(f("address missing"))
	ErrValueMissing   = errors.New(f("value missing"))
)

type ErrOctal string

func (err ErrOctal) Error() string {
	return f("'%v' is not an octal number", string(err))
}

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
