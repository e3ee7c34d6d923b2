package app

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"teddy/hal"
)

var errFramePanic = errors.New("frame panic")

// recoverFrame turns a panic during rendering into an error and logs the stack.
// Use as: defer recoverFrame(log, frame, &err).
func recoverFrame(l hal.Logger, frame uint64, err *error) {
	v := recover()
	if v == nil {
		return
	}

	hal.Logf(l, "teddy panic: frame=%d panic=%v", frame, v)
	for _, line := range strings.Split(string(debug.Stack()), "\n") {
		if line == "" {
			continue
		}
		hal.Logf(l, "%s", line)
	}

	if e, ok := v.(error); ok {
		*err = fmt.Errorf("%w: frame %d: %w", errFramePanic, frame, e)
		return
	}
	*err = fmt.Errorf("%w: frame %d: %v", errFramePanic, frame, v)
}
