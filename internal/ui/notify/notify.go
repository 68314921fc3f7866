package notify

import (
	"sync"
	"time"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

type Notice struct {
	Message  string
	Severity Severity
}

// Notifier holds at most one transient notice. Showing a notice arms an
// auto-dismiss timer; replacing or dismissing it releases the old timer.
type Notifier struct {
	mu         sync.Mutex
	ttl        time.Duration
	current    *Notice
	timer      *time.Timer
	generation uint64
}

func New(ttl time.Duration) *Notifier {
	return &Notifier{ttl: ttl}
}

func (n *Notifier) Show(message string, severity Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.generation++
	gen := n.generation
	n.current = &Notice{Message: message, Severity: severity}
	n.timer = time.AfterFunc(n.ttl, func() {
		n.expire(gen)
	})
}

func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	// A newer notice owns the slot now.
	if gen != n.generation {
		return
	}
	n.current = nil
	n.timer = nil
}

func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.generation++
	n.current = nil
}

func (n *Notifier) Current() (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notice{}, false
	}
	return *n.current, true
}
