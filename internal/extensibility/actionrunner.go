package extensibility

import (
	"context"
	"log/slog"
	"time"
	"unsafe"

	"github.com/comalice/tablefsm"
)

// LoggedAction wraps action so that every call is logged at debug level with
// its duration. The wrapper is registered under name for ActionName. A nil
// logger returns action unchanged.
func LoggedAction[C, P any](name string, action tablefsm.Action[C, P], logger *slog.Logger) tablefsm.Action[C, P] {
	if logger == nil || action == nil {
		return action
	}
	var wrapped tablefsm.Action[C, P] = func(client C, params P) {
		ctx := context.Background()
		if !logger.Enabled(ctx, slog.LevelDebug) {
			action(client, params)
			return
		}
		start := time.Now()
		action(client, params)
		logger.LogAttrs(ctx, slog.LevelDebug, "action executed",
			slog.String("action", name),
			slog.Duration("took", time.Since(start)),
		)
	}
	callbackNames.Store(closureKey(unsafe.Pointer(&wrapped)), name)
	return wrapped
}

// LoggedGuard wraps guard so that every evaluation is logged at debug level
// with its result. The wrapper is registered under name for GuardName.
func LoggedGuard[C, P any](name string, guard tablefsm.Guard[C, P], logger *slog.Logger) tablefsm.Guard[C, P] {
	if logger == nil || guard == nil {
		return guard
	}
	var wrapped tablefsm.Guard[C, P] = func(client C, params P) bool {
		ctx := context.Background()
		start := time.Now()
		ok := guard(client, params)
		logger.LogAttrs(ctx, slog.LevelDebug, "guard evaluated",
			slog.String("guard", name),
			slog.Bool("result", ok),
			slog.Duration("took", time.Since(start)),
		)
		return ok
	}
	callbackNames.Store(closureKey(unsafe.Pointer(&wrapped)), name)
	return wrapped
}
