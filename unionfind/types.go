package unionfind

import (
	"errors"
	"strconv"
)

// ErrInvalidLabel is the panic value for operations on Unassigned or on a
// label outside the forest's capacity.
var ErrInvalidLabel = errors.New("unionfind: invalid label")

// Label identifies a provisional or root component.
type Label int

// Unassigned marks a pixel that carries no label (background or not yet visited).
const Unassigned Label = 0

// Assigned reports whether l is a real label.
func (l Label) Assigned() bool {
	return l != Unassigned
}

// String returns the decimal form of l, or "unassigned".
func (l Label) String() string {
	if l == Unassigned {
		return "unassigned"
	}
	return strconv.Itoa(int(l))
}
