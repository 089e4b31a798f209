package notifier

import (
	"sync"

	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

type subscription struct {
	id      uint64
	handler func(votewallet.Event)
}

type fanoutNotifier struct {
	mutex         sync.Mutex
	nextID        uint64
	subscriptions []subscription
}

// New returns a synchronous in-process notifier. Handlers run on the
// publishing goroutine, in subscription order.
func New() votewallet.Notifier {
	return &fanoutNotifier{}
}

func (n *fanoutNotifier) Publish(event votewallet.Event) {
	n.mutex.Lock()
	handlers := make([]func(votewallet.Event), 0, len(n.subscriptions))
	for _, sub := range n.subscriptions {
		handlers = append(handlers, sub.handler)
	}
	n.mutex.Unlock()

	for _, handler := range handlers {
		handler(event)
	}
}

func (n *fanoutNotifier) Subscribe(handler func(votewallet.Event)) func() {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	n.nextID++
	id := n.nextID
	n.subscriptions = append(n.subscriptions, subscription{id: id, handler: handler})

	return func() {
		n.mutex.Lock()
		defer n.mutex.Unlock()

		for i, sub := range n.subscriptions {
			if sub.id == id {
				n.subscriptions = append(n.subscriptions[:i], n.subscriptions[i+1:]...)
				return
			}
		}
	}
}
