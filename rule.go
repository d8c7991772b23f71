package tablefsm

import "fmt"

// RuleKind tags the four shapes a Rule can take.
type RuleKind uint8

const (
	KindDefaultAction RuleKind = iota
	KindDefaultTransition
	KindTransition
	KindConditionalTransition
)

func (k RuleKind) String() string {
	switch k {
	case KindDefaultAction:
		return "default-action"
	case KindDefaultTransition:
		return "default-transition"
	case KindTransition:
		return "transition"
	case KindConditionalTransition:
		return "conditional-transition"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// rank orders kinds from least to most specific.
func (k RuleKind) rank() int {
	switch k {
	case KindDefaultAction:
		return 0
	case KindDefaultTransition:
		return 1
	default:
		return 2
	}
}

// Branch is one (destination, actions) outcome of a transition.
type Branch[C, P any] struct {
	Target  StateID
	Actions ActionList[C, P]
}

// Rule is one declarative record consumed by Build. Rules only live until the
// table is built.
//
// Source is ignored by the two default kinds, which apply to every state.
// Target of the primary branch is ignored by KindDefaultAction, which keeps
// each state where it is. Guard and Secondary are only read for
// KindConditionalTransition.
type Rule[C, P any] struct {
	Kind      RuleKind
	Source    StateID
	Event     EventID
	Guard     Guard[C, P]
	Primary   Branch[C, P]
	Secondary Branch[C, P]
}

// DefaultAction runs actions on event in every state without a more specific
// rule. The state does not change.
func DefaultAction[C, P any](event EventID, actions ...Action[C, P]) Rule[C, P] {
	return Rule[C, P]{
		Kind:      KindDefaultAction,
		Source:    NoState,
		Event:     event,
		Primary:   Branch[C, P]{Target: NoState, Actions: NewActionList(actions...)},
		Secondary: Branch[C, P]{Target: NoState},
	}
}

// DefaultTransition moves every state to dest on event and runs actions.
func DefaultTransition[C, P any](event EventID, dest StateID, actions ...Action[C, P]) Rule[C, P] {
	return Rule[C, P]{
		Kind:      KindDefaultTransition,
		Source:    NoState,
		Event:     event,
		Primary:   Branch[C, P]{Target: dest, Actions: NewActionList(actions...)},
		Secondary: Branch[C, P]{Target: NoState},
	}
}

// Transition moves src to dest on event and runs actions.
func Transition[C, P any](src StateID, event EventID, dest StateID, actions ...Action[C, P]) Rule[C, P] {
	return Rule[C, P]{
		Kind:      KindTransition,
		Source:    src,
		Event:     event,
		Primary:   Branch[C, P]{Target: dest, Actions: NewActionList(actions...)},
		Secondary: Branch[C, P]{Target: NoState},
	}
}

// ConditionalTransition evaluates guard when event arrives in src. A true
// result takes dest1 with actions1, false takes dest2 with actions2.
func ConditionalTransition[C, P any](src StateID, event EventID, guard Guard[C, P],
	dest1 StateID, actions1 []Action[C, P],
	dest2 StateID, actions2 []Action[C, P],
) Rule[C, P] {
	return Rule[C, P]{
		Kind:      KindConditionalTransition,
		Source:    src,
		Event:     event,
		Guard:     guard,
		Primary:   Branch[C, P]{Target: dest1, Actions: NewActionList(actions1...)},
		Secondary: Branch[C, P]{Target: dest2, Actions: NewActionList(actions2...)},
	}
}

func (r Rule[C, P]) String() string {
	switch r.Kind {
	case KindDefaultAction:
		return fmt.Sprintf("%s(* --%d--> *, %d actions)", r.Kind, r.Event, r.Primary.Actions.Len())
	case KindDefaultTransition:
		return fmt.Sprintf("%s(* --%d--> %d, %d actions)", r.Kind, r.Event, r.Primary.Target, r.Primary.Actions.Len())
	case KindTransition:
		return fmt.Sprintf("%s(%d --%d--> %d, %d actions)", r.Kind, r.Source, r.Event, r.Primary.Target, r.Primary.Actions.Len())
	case KindConditionalTransition:
		return fmt.Sprintf("%s(%d --%d--> %d|%d)", r.Kind, r.Source, r.Event, r.Primary.Target, r.Secondary.Target)
	default:
		return r.Kind.String()
	}
}
