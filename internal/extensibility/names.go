package extensibility

import (
	"sync"
	"unsafe"

	"github.com/comalice/tablefsm"
)

// callbackNames maps a wrapper's closure to the name it was created with.
// Keys keep their closure reachable, so an address is never reused for a
// different callback. Entries live as long as the process.
var callbackNames sync.Map // unsafe.Pointer -> string

// closureKey returns the address of the closure behind a func value. Every
// wrapper returned by LoggedAction shares one code pointer, so the closure
// address is the only identity that tells them apart.
func closureKey(fn unsafe.Pointer) unsafe.Pointer {
	return *(*unsafe.Pointer)(fn)
}

// ActionName returns the name a LoggedAction wrapper was created with.
func ActionName[C, P any](action tablefsm.Action[C, P]) (string, bool) {
	if action == nil {
		return "", false
	}
	return lookupName(closureKey(unsafe.Pointer(&action)))
}

// GuardName returns the name a LoggedGuard wrapper was created with.
func GuardName[C, P any](guard tablefsm.Guard[C, P]) (string, bool) {
	if guard == nil {
		return "", false
	}
	return lookupName(closureKey(unsafe.Pointer(&guard)))
}

func lookupName(key unsafe.Pointer) (string, bool) {
	v, ok := callbackNames.Load(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}
