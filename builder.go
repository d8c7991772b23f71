package tablefsm

import (
	"fmt"
	"slices"
)

// Precedence selects how overlapping rules resolve.
type Precedence uint8

const (
	// PrecedenceDeclarationOrder applies rules strictly in the order given.
	// A later rule overwrites every cell it touches, so a default rule
	// declared after a state-specific rule for the same event replaces it.
	PrecedenceDeclarationOrder Precedence = iota

	// PrecedenceSpecificity applies all default actions first, then all
	// default transitions, then all state-specific rules. Declaration order
	// still decides between rules of the same rank.
	PrecedenceSpecificity
)

func (p Precedence) String() string {
	switch p {
	case PrecedenceDeclarationOrder:
		return "declaration-order"
	case PrecedenceSpecificity:
		return "specificity"
	default:
		return fmt.Sprintf("precedence(%d)", uint8(p))
	}
}

// Build resolves rules into a dense dispatch table with states x events cells.
//
// Rules never conflict: the last rule applied to a cell wins. Build only fails
// on malformed configuration, such as an out-of-range state or event, a nil
// action, a missing guard, or an action list longer than the configured
// capacity.
func Build[C, P any](states, events int, rules []Rule[C, P], opts ...TableOption) (*Table[C, P], error) {
	cfg := tableConfig{maxActions: DefaultMaxActions}
	for _, opt := range opts {
		opt(&cfg)
	}

	if states <= 0 || events <= 0 {
		return nil, fmt.Errorf("%d states x %d events: %w", states, events, ErrInvalidDimensions)
	}
	if cfg.maxActions <= 0 {
		return nil, fmt.Errorf("max actions %d: %w", cfg.maxActions, ErrInvalidMaxActions)
	}

	t := &Table[C, P]{
		states:     states,
		events:     events,
		initial:    cfg.initial,
		maxActions: cfg.maxActions,
		precedence: cfg.precedence,
		stateNames: slices.Clone(cfg.stateNames),
		eventNames: slices.Clone(cfg.eventNames),
		cells:      make([]Entry[C, P], states*events),
	}
	if !t.ValidState(t.initial) {
		return nil, fmt.Errorf("initial state %d: %w", t.initial, ErrInvalidInitialState)
	}

	// Every cell starts as the implicit no-op.
	invalid := t.InvalidState()
	for s := 0; s < states; s++ {
		for e := 0; e < events; e++ {
			*t.cell(StateID(s), EventID(e)) = Entry[C, P]{
				Primary:   Branch[C, P]{Target: StateID(s)},
				Secondary: Branch[C, P]{Target: invalid},
			}
		}
	}

	for i, r := range rules {
		if err := t.validate(r); err != nil {
			return nil, fmt.Errorf("rule[%d] %s: %w", i, r, err)
		}
	}

	for _, r := range t.ordered(rules) {
		t.apply(r)
	}
	return t, nil
}

// MustBuild is like Build but panics on error.
func MustBuild[C, P any](states, events int, rules []Rule[C, P], opts ...TableOption) *Table[C, P] {
	t, err := Build(states, events, rules, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to build dispatch table: %v", err))
	}
	return t
}

// ordered returns rules in application order for the table's precedence.
func (t *Table[C, P]) ordered(rules []Rule[C, P]) []Rule[C, P] {
	if t.precedence != PrecedenceSpecificity {
		return rules
	}
	sorted := slices.Clone(rules)
	slices.SortStableFunc(sorted, func(a, b Rule[C, P]) int {
		return a.Kind.rank() - b.Kind.rank()
	})
	return sorted
}

func (t *Table[C, P]) validate(r Rule[C, P]) error {
	if !t.ValidEvent(r.Event) {
		return ErrEventOutOfRange
	}

	switch r.Kind {
	case KindDefaultAction:
	case KindDefaultTransition:
		if !t.ValidState(r.Primary.Target) {
			return ErrStateOutOfRange
		}
	case KindTransition:
		if !t.ValidState(r.Source) || !t.ValidState(r.Primary.Target) {
			return ErrStateOutOfRange
		}
	case KindConditionalTransition:
		if !t.ValidState(r.Source) || !t.ValidState(r.Primary.Target) || !t.ValidState(r.Secondary.Target) {
			return ErrStateOutOfRange
		}
		if r.Guard == nil {
			return ErrNilGuard
		}
		if err := t.validateActions(r.Secondary.Actions); err != nil {
			return err
		}
	default:
		return ErrUnknownRuleKind
	}

	return t.validateActions(r.Primary.Actions)
}

func (t *Table[C, P]) validateActions(l ActionList[C, P]) error {
	if l.Len() > t.maxActions {
		return fmt.Errorf("%d > %d: %w", l.Len(), t.maxActions, ErrTooManyActions)
	}
	if i := l.firstNil(); i >= 0 {
		return fmt.Errorf("index %d: %w", i, ErrNilAction)
	}
	return nil
}

// apply writes one validated rule into the table.
func (t *Table[C, P]) apply(r Rule[C, P]) {
	unset := Branch[C, P]{Target: t.InvalidState()}

	switch r.Kind {
	case KindDefaultAction:
		for s := 0; s < t.states; s++ {
			*t.cell(StateID(s), r.Event) = Entry[C, P]{
				Primary:   Branch[C, P]{Target: StateID(s), Actions: r.Primary.Actions},
				Secondary: unset,
			}
		}
	case KindDefaultTransition:
		for s := 0; s < t.states; s++ {
			*t.cell(StateID(s), r.Event) = Entry[C, P]{
				Primary:   r.Primary,
				Secondary: unset,
			}
		}
	case KindTransition:
		*t.cell(r.Source, r.Event) = Entry[C, P]{
			Primary:   r.Primary,
			Secondary: unset,
		}
	case KindConditionalTransition:
		*t.cell(r.Source, r.Event) = Entry[C, P]{
			Guard:     r.Guard,
			Primary:   r.Primary,
			Secondary: r.Secondary,
		}
	}
}

// Builder accumulates rules in call order and hands them to Build.
type Builder[C, P any] struct {
	states int
	events int
	opts   []TableOption
	rules  []Rule[C, P]
}

// NewBuilder creates a builder for a table of states x events cells.
func NewBuilder[C, P any](states, events int, opts ...TableOption) *Builder[C, P] {
	return &Builder[C, P]{
		states: states,
		events: events,
		opts:   opts,
	}
}

func (b *Builder[C, P]) DefaultAction(event EventID, actions ...Action[C, P]) *Builder[C, P] {
	return b.Rule(DefaultAction(event, actions...))
}

func (b *Builder[C, P]) DefaultTransition(event EventID, dest StateID, actions ...Action[C, P]) *Builder[C, P] {
	return b.Rule(DefaultTransition(event, dest, actions...))
}

func (b *Builder[C, P]) Transition(src StateID, event EventID, dest StateID, actions ...Action[C, P]) *Builder[C, P] {
	return b.Rule(Transition(src, event, dest, actions...))
}

func (b *Builder[C, P]) ConditionalTransition(src StateID, event EventID, guard Guard[C, P],
	dest1 StateID, actions1 []Action[C, P],
	dest2 StateID, actions2 []Action[C, P],
) *Builder[C, P] {
	return b.Rule(ConditionalTransition(src, event, guard, dest1, actions1, dest2, actions2))
}

// Rule appends prebuilt rules.
func (b *Builder[C, P]) Rule(rules ...Rule[C, P]) *Builder[C, P] {
	b.rules = append(b.rules, rules...)
	return b
}

// Rules returns a copy of the accumulated rules.
func (b *Builder[C, P]) Rules() []Rule[C, P] {
	return slices.Clone(b.rules)
}

func (b *Builder[C, P]) Build() (*Table[C, P], error) {
	return Build(b.states, b.events, b.rules, b.opts...)
}

func (b *Builder[C, P]) MustBuild() *Table[C, P] {
	return MustBuild(b.states, b.events, b.rules, b.opts...)
}
