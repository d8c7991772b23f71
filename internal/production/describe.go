// Package production provides production integrations: table export,
// visualization and observation.
package production

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/comalice/tablefsm"
	"github.com/comalice/tablefsm/internal/extensibility"
	"github.com/comalice/tablefsm/internal/primitives"
)

// Describe converts a built table into its serialisable description. Cells
// that keep the state unchanged and run nothing are omitted. Callbacks wrapped
// by extensibility.LoggedAction or LoggedGuard keep the name they were wrapped
// with; others are named after the Go function they point to.
func Describe[C, P any](id string, table *tablefsm.Table[C, P]) primitives.TableDescription {
	desc := primitives.TableDescription{
		ID:         id,
		States:     make([]string, table.StateCount()),
		Events:     make([]string, table.EventCount()),
		Initial:    int(table.InitialState()),
		MaxActions: table.MaxActions(),
		Precedence: table.Precedence().String(),
	}
	for s := range desc.States {
		desc.States[s] = table.StateName(tablefsm.StateID(s))
	}
	for e := range desc.Events {
		desc.Events[e] = table.EventName(tablefsm.EventID(e))
	}

	table.Each(func(s tablefsm.StateID, e tablefsm.EventID, entry tablefsm.Entry[C, P]) bool {
		if entry.IsNoop(s) {
			return true
		}
		cell := primitives.CellDescription{
			State:   int(s),
			Event:   int(e),
			Primary: describeBranch(entry.Primary),
		}
		if entry.Guard != nil {
			cell.Guard = guardName(entry.Guard)
			secondary := describeBranch(entry.Secondary)
			cell.Secondary = &secondary
		}
		desc.Cells = append(desc.Cells, cell)
		return true
	})

	return desc
}

func describeBranch[C, P any](b tablefsm.Branch[C, P]) primitives.BranchDescription {
	out := primitives.BranchDescription{Target: int(b.Target)}
	for i := 0; i < b.Actions.Len(); i++ {
		out.Actions = append(out.Actions, actionName(b.Actions.At(i)))
	}
	return out
}

func actionName[C, P any](a tablefsm.Action[C, P]) string {
	if name, ok := extensibility.ActionName(a); ok {
		return name
	}
	return funcName(a)
}

func guardName[C, P any](g tablefsm.Guard[C, P]) string {
	if name, ok := extensibility.GuardName(g); ok {
		return name
	}
	return funcName(g)
}

// funcName returns the short name of the function fn points to, e.g.
// "main.(*Turnstile).Unlock" or "demo.init.func1".
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "unknown"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
