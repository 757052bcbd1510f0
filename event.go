package dect

import (
	"time"

	"github.com/sirupsen/logrus"

	"golang.org/x/sys/unix"
)

// FDEvents is a bitmask of file descriptor events.
type FDEvents uint32

const (
	// FDRead signals readability.
	FDRead FDEvents = 1 << iota
	// FDWrite signals writability.
	FDWrite
)

// EventOps is the event loop capability the application passes into
// the constructor. The library registers its file descriptors and
// timers here and never polls on its own.
type EventOps interface {
	// RegisterFD asks the event loop to watch fd for events. The
	// application invokes Handle.FDProcess when they occur.
	RegisterFD(fd *FD, events FDEvents) error
	// UnregisterFD removes fd from the event loop.
	UnregisterFD(fd *FD)

	// RegisterTimer arms a single-shot timer. The application
	// invokes Handle.TimerExpired when it fires.
	RegisterTimer(t *Timer, timeout time.Duration) error
	// UnregisterTimer disarms a timer before expiry.
	UnregisterTimer(t *Timer)
}

// FD is a library-owned file descriptor registered with the
// application's event loop. Priv is an application scratch slot
// attached to the descriptor.
type FD struct {
	Priv any

	fd         int
	registered bool
	callback   func(h *Handle, fd *FD, events FDEvents)
	data       any
}

// Num returns the file descriptor number.
func (f *FD) Num() int {
	return f.fd
}

func (f *FD) setup(cb func(*Handle, *FD, FDEvents), data any) {
	f.callback = cb
	f.data = data
}

func (h *Handle) registerFD(f *FD, events FDEvents) error {
	if err := h.ops.Event.RegisterFD(f, events); err != nil {
		return err
	}
	f.registered = true
	return nil
}

func (h *Handle) unregisterFD(f *FD) {
	if !f.registered {
		return
	}
	h.ops.Event.UnregisterFD(f)
	f.registered = false
}

func (h *Handle) closeFD(f *FD) {
	if f.fd >= 0 {
		if err := unix.Close(f.fd); err != nil {
			logrus.WithFields(logrus.Fields{
				"fd":    f.fd,
				"error": err,
			}).Warn("closing file descriptor failed")
		}
		f.fd = -1
	}
}

// FDProcess delivers file descriptor events from the application's
// event loop to the library.
func (h *Handle) FDProcess(f *FD, events FDEvents) {
	if f.callback == nil {
		return
	}
	f.callback(h, f, events)
}

// Timer is a single-shot timer backed by the application's event
// loop: at most one expiry is delivered per Start.
type Timer struct {
	running  bool
	callback func(h *Handle, t *Timer)
	data     any
}

func (t *Timer) setup(cb func(*Handle, *Timer), data any) {
	t.callback = cb
	t.data = data
}

// Running reports whether the timer is armed.
func (t *Timer) Running() bool {
	return t.running
}

func (h *Handle) startTimer(t *Timer, timeout time.Duration) error {
	if err := h.ops.Event.RegisterTimer(t, timeout); err != nil {
		return err
	}
	t.running = true
	return nil
}

func (h *Handle) stopTimer(t *Timer) {
	if !t.running {
		return
	}
	h.ops.Event.UnregisterTimer(t)
	t.running = false
}

// TimerExpired delivers a timer expiry from the application's event
// loop to the library. Expiries on stopped timers are ignored.
func (h *Handle) TimerExpired(t *Timer) {
	if !t.running {
		return
	}
	t.running = false
	if t.callback != nil {
		t.callback(h, t)
	}
}
