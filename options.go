package tablefsm

import (
	"log/slog"
	"slices"
)

type tableConfig struct {
	initial    StateID
	maxActions int
	precedence Precedence
	stateNames []string
	eventNames []string
}

// TableOption configures Build.
type TableOption func(*tableConfig)

// WithInitialState sets the designated initial state of the table.
func WithInitialState(s StateID) TableOption {
	return func(c *tableConfig) {
		c.initial = s
	}
}

// WithMaxActions sets the capacity of every action list in the table.
func WithMaxActions(n int) TableOption {
	return func(c *tableConfig) {
		c.maxActions = n
	}
}

// WithPrecedence selects how overlapping rules resolve.
func WithPrecedence(p Precedence) TableOption {
	return func(c *tableConfig) {
		c.precedence = p
	}
}

// WithStateNames labels states by index for logs and exports.
func WithStateNames(names ...string) TableOption {
	return func(c *tableConfig) {
		c.stateNames = slices.Clone(names)
	}
}

// WithEventNames labels events by index for logs and exports.
func WithEventNames(names ...string) TableOption {
	return func(c *tableConfig) {
		c.eventNames = slices.Clone(names)
	}
}

type machineConfig struct {
	initial  *StateID
	id       string
	logger   *slog.Logger
	observer Observer
}

// Option configures a Machine.
type Option func(*machineConfig)

// WithStartState overrides the table's initial state for one machine.
func WithStartState(s StateID) Option {
	return func(c *machineConfig) {
		c.initial = &s
	}
}

// WithID names the machine in log records and observer records.
func WithID(id string) Option {
	return func(c *machineConfig) {
		c.id = id
	}
}

// WithLogger configures debug tracing of Trigger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *machineConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers an observer notified after every dispatched transition.
func WithObserver(o Observer) Option {
	return func(c *machineConfig) {
		c.observer = o
	}
}
