package rlox

import "fmt"

// Stop represents the reason statement execution ended. It is distinct from
// runtime failure: a Stop is ordinary control flow, absorbed by the
// construct it unwinds to, and never reaches users.
type Stop int

// Control flow reasons.
const (
	// NoStop indicates normal completion.
	NoStop Stop = iota
	// BreakStop should be interpreted by loops as a signal to exit the
	// loop. The context checker guarantees every break has one.
	BreakStop
	// ReturnStop should be interpreted by function calls as a signal to
	// exit with the accompanying value.
	ReturnStop
)

var stopNames = [...]string{"normal", "break", "return"}

func (s Stop) String() string {
	if s < NoStop || s > ReturnStop {
		return fmt.Sprintf("Stop(%d)", int(s))
	}
	return stopNames[s]
}
