package primitives

import (
	"errors"
	"fmt"
)

// TableDescription describes a dispatch table.
type TableDescription struct {
	Version    string            `json:"version,omitempty" yaml:"version,omitempty"`
	ID         string            `json:"id" yaml:"id"`
	States     []string          `json:"states" yaml:"states"`
	Events     []string          `json:"events" yaml:"events"`
	Initial    int               `json:"initial" yaml:"initial"`
	MaxActions int               `json:"maxActions" yaml:"maxActions"`
	Precedence string            `json:"precedence,omitempty" yaml:"precedence,omitempty"`
	Cells      []CellDescription `json:"cells" yaml:"cells"`
}

// CellDescription describes one non-trivial (state, event) cell.
type CellDescription struct {
	State     int                `json:"state" yaml:"state"`
	Event     int                `json:"event" yaml:"event"`
	Guard     string             `json:"guard,omitempty" yaml:"guard,omitempty"`
	Primary   BranchDescription  `json:"primary" yaml:"primary"`
	Secondary *BranchDescription `json:"secondary,omitempty" yaml:"secondary,omitempty"`
}

// BranchDescription is a target state and the names of the actions run on
// the way there.
type BranchDescription struct {
	Target  int      `json:"target" yaml:"target"`
	Actions []string `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// InvalidState is the index of the sentinel state.
func (d *TableDescription) InvalidState() int { return len(d.States) }

// StateLabel returns the name of state i, "invalid" for the sentinel.
func (d *TableDescription) StateLabel(i int) string {
	if i >= 0 && i < len(d.States) {
		return d.States[i]
	}
	if i == d.InvalidState() {
		return "invalid"
	}
	return fmt.Sprintf("state(%d)", i)
}

// EventLabel returns the name of event i.
func (d *TableDescription) EventLabel(i int) string {
	if i >= 0 && i < len(d.Events) {
		return d.Events[i]
	}
	return fmt.Sprintf("event(%d)", i)
}

// Validate checks the description is internally consistent:
//   - non-empty ID, states and events
//   - initial state in range
//   - every cell's state and event in range
//   - branch targets in range or the invalid sentinel
//   - action counts within MaxActions
//   - a secondary branch only where there is a guard
func (d *TableDescription) Validate() error {
	if d.ID == "" {
		return errors.New("table ID is required")
	}
	if len(d.States) == 0 || len(d.Events) == 0 {
		return errors.New("states and events cannot be empty")
	}
	if d.Initial < 0 || d.Initial >= len(d.States) {
		return fmt.Errorf("initial state %d out of range [0,%d)", d.Initial, len(d.States))
	}

	for i, c := range d.Cells {
		if c.State < 0 || c.State >= len(d.States) {
			return fmt.Errorf("cell %d: state %d out of range", i, c.State)
		}
		if c.Event < 0 || c.Event >= len(d.Events) {
			return fmt.Errorf("cell %d: event %d out of range", i, c.Event)
		}
		if err := d.validateBranch(c.Primary); err != nil {
			return fmt.Errorf("cell %d (%s, %s) primary: %w", i, d.StateLabel(c.State), d.EventLabel(c.Event), err)
		}
		if c.Secondary == nil {
			continue
		}
		if c.Guard == "" {
			return fmt.Errorf("cell %d (%s, %s): secondary branch without guard", i, d.StateLabel(c.State), d.EventLabel(c.Event))
		}
		if err := d.validateBranch(*c.Secondary); err != nil {
			return fmt.Errorf("cell %d (%s, %s) secondary: %w", i, d.StateLabel(c.State), d.EventLabel(c.Event), err)
		}
	}

	return nil
}

func (d *TableDescription) validateBranch(b BranchDescription) error {
	if b.Target < 0 || b.Target > d.InvalidState() {
		return fmt.Errorf("target %d out of range", b.Target)
	}
	if d.MaxActions > 0 && len(b.Actions) > d.MaxActions {
		return fmt.Errorf("%d actions exceed capacity %d", len(b.Actions), d.MaxActions)
	}
	return nil
}
