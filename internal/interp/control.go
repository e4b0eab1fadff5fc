package interp

import "github.com/cwbudde/go-simplelang/internal/object"

// Control-flow interrupts travel the same error channel as script errors
// but are never user-visible: the nearest user-function call captures a
// return interrupt, the nearest loop handles break and continue, and main
// swallows anything that escapes to the top level.

// loopStatus distinguishes the two loop interrupts.
type loopStatus int

const (
	loopBreak loopStatus = iota
	loopContinue
)

// returnInterrupt carries the value of a return out of a function body.
type returnInterrupt struct {
	value object.Value
}

func (r *returnInterrupt) Error() string { return "interrupt: return" }

// loopInterrupt signals break or continue to the enclosing loop.
type loopInterrupt struct {
	status loopStatus
}

func (l *loopInterrupt) Error() string { return "interrupt: loop" }

// isInterrupt reports whether err is a control-flow interrupt.
func isInterrupt(err error) bool {
	switch err.(type) {
	case *returnInterrupt, *loopInterrupt:
		return true
	}
	return false
}
