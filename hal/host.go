package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type pollingKeyboard interface {
	Keyboard
	poll()
}

type hostHAL struct {
	logger  *hostLogger
	display *hostDisplay
	kbd     pollingKeyboard
}

// New returns a host HAL whose keyboard follows the window (if any).
func New() HAL {
	return newHost(os.Stdout, newHostKeyboard())
}

func newHost(w io.Writer, kbd pollingKeyboard) *hostHAL {
	return &hostHAL{
		logger:  &hostLogger{w: w},
		display: &hostDisplay{},
		kbd:     kbd,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.display }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostInput struct {
	kbd Keyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// Logf formats a line and writes it to l. A nil logger drops the line.
func Logf(l Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}
