package scramble

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("scramble")

// ShapeError is returned when a puzzle record is neither a plain nor a
// scrambled puzzle. It keeps the reason each shape was rejected.
type ShapeError struct {
	Index     int
	Plain     error
	Scrambled error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("puzzle %d: not plain (%v) and not scrambled (%v)",
		e.Index, e.Plain, e.Scrambled)
}
