package tablefsm

import "errors"

var (
	ErrInvalidDimensions   = errors.New("state and event counts must be positive")
	ErrInvalidInitialState = errors.New("initial state out of range")
	ErrStateOutOfRange     = errors.New("state out of range")
	ErrEventOutOfRange     = errors.New("event out of range")
	ErrTooManyActions      = errors.New("action list exceeds max actions per transition")
	ErrNilAction           = errors.New("nil action in action list")
	ErrNilGuard            = errors.New("conditional transition requires a guard")
	ErrUnknownRuleKind     = errors.New("unknown rule kind")
	ErrInvalidMaxActions   = errors.New("max actions per transition must be positive")
)
