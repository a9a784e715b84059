package store

import (
	"context"
	"sync"
)

// changeNotifier fans conflated change signals out to per-user subscribers.
// Channels are buffered with one slot; a signal that finds the buffer full is
// simply dropped since the pending signal already covers it.
type changeNotifier struct {
	mu     sync.Mutex
	subs   map[string]map[int]chan struct{}
	nextID int
}

func newChangeNotifier() *changeNotifier {
	return &changeNotifier{subs: make(map[string]map[int]chan struct{})}
}

func (n *changeNotifier) subscribe(ctx context.Context, userID string) <-chan struct{} {
	ch := make(chan struct{}, 1)
	ch <- struct{}{}

	n.mu.Lock()
	if n.subs[userID] == nil {
		n.subs[userID] = make(map[int]chan struct{})
	}
	id := n.nextID
	n.nextID++
	n.subs[userID][id] = ch
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.mu.Lock()
		delete(n.subs[userID], id)
		n.mu.Unlock()
	}()

	return ch
}

func (n *changeNotifier) notify(userID string) {
	n.mu.Lock()
	for _, ch := range n.subs[userID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	n.mu.Unlock()
}
