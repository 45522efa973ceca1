package race

import (
	"errors"
	"fmt"
)

// Status is the race lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusRacing
	StatusFinished
)

// ErrIllegalTransition is returned when a status change is not allowed.
var ErrIllegalTransition = errors.New("race: illegal status transition")

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "IDLE"
	case StatusRacing:
		return "RACING"
	case StatusFinished:
		return "FINISHED"
	default:
		return "UNKNOWN"
	}
}

// CanTransition reports whether the race may move from s to next.
//
//	IDLE     -> IDLE      re-initialize (runner count change, reset)
//	IDLE     -> RACING    start
//	RACING   -> FINISHED  every runner is resting
//	RACING   -> IDLE      reset mid-race
//	FINISHED -> IDLE      reset
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusIdle:
		return next == StatusIdle || next == StatusRacing
	case StatusRacing:
		return next == StatusFinished || next == StatusIdle
	case StatusFinished:
		return next == StatusIdle
	default:
		return false
	}
}

// transition validates and applies a status change.
func (e *Engine) transition(next Status) error {
	if !e.status.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, e.status, next)
	}
	e.status = next
	return nil
}
