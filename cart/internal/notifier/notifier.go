// Package notifier is the one-way change channel between the cart store and
// its view fragments (header badge, cart page, summary panel).
package notifier

import (
	"sync"
)

type subscription struct {
	id       int
	callback func()
}

// Notifier fans a change signal out to subscribers. Fan-out is synchronous
// and runs in registration order; every completed mutation produces exactly
// one Publish, with no queuing or coalescing.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

func New() *Notifier {
	return &Notifier{}
}

// Subscribe registers callback and returns its unsubscribe handle.
func (n *Notifier) Subscribe(callback func()) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.nextID
	n.nextID++
	n.subs = append(n.subs, subscription{id: id, callback: callback})
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, sub := range n.subs {
			if sub.id == id {
				n.subs = append(n.subs[:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish invokes every subscriber before returning. Subscribers run outside
// the notifier lock so they may subscribe or unsubscribe while handling.
func (n *Notifier) Publish() {
	n.mu.Lock()
	subs := make([]subscription, len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, sub := range subs {
		sub.callback()
	}
}
