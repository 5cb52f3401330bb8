package emulator

import (
	"fmt"
	"strconv"

	"github.com/ezrec/mixvm/translate"
)

var f = translate.From

var (
	ErrTickLimit = translate.NewError("tick limit reached")
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo   int
	Location int
	Err      error
}

func (err *ErrRuntime) Error() string {
	return f("line %s location %s %v", strconv.Itoa(err.LineNo), fmt.Sprintf("%04d", err.Location), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
