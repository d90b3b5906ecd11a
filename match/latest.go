package match

import (
	"sync"

	"github.com/nelhage/isolation/isolation"
)

// Latest is the result channel for one turn. It keeps the most
// recently published action until it is sealed; publishes after Seal
// are dropped.
type Latest struct {
	mu     sync.Mutex
	action isolation.Action
	ok     bool
	sealed bool
	n      int
}

func (l *Latest) Publish(a isolation.Action) {
	l.Offer(a)
}

// Offer publishes a unless l is sealed, and reports whether it did.
func (l *Latest) Offer(a isolation.Action) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sealed {
		return false
	}
	l.action = a
	l.ok = true
	l.n++
	return true
}

// Action returns the current action and whether anything has been
// published yet.
func (l *Latest) Action() (isolation.Action, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.action, l.ok
}

// Seal stops accepting publishes and returns the final action.
func (l *Latest) Seal() (isolation.Action, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sealed = true
	return l.action, l.ok
}

// Count is the number of accepted publishes.
func (l *Latest) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.n
}
