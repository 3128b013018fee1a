package patch

import "sync"

// PatchesUpdated is the name of the event fired after every successful
// change to the set of patches or their enablement.
const PatchesUpdated = "patchwork.patchesUpdated"

// Event carries no state; subscribers re-query the Manager. Seq increases
// by one per event.
type Event struct {
	Name string
	Seq  uint64
}

// Notifier fans events out to subscribers synchronously.
type Notifier struct {
	mu   sync.Mutex
	subs map[int]func(Event)
	next int
	seq  uint64
}

// NewNotifier creates a notifier with no subscribers.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func(Event))}
}

// Subscribe registers fn. The returned function unsubscribes it.
func (n *Notifier) Subscribe(fn func(Event)) (cancel func()) {
	n.mu.Lock()
	id := n.next
	n.next++
	n.subs[id] = fn
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
		})
	}
}

// Notify delivers one PatchesUpdated event. It must not be called with
// the Manager's lock held.
func (n *Notifier) Notify() {
	n.mu.Lock()
	n.seq++
	ev := Event{Name: PatchesUpdated, Seq: n.seq}
	subs := make([]func(Event), 0, len(n.subs))
	for _, fn := range n.subs {
		subs = append(subs, fn)
	}
	n.mu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}
