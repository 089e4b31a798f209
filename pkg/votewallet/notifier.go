package votewallet

type EventKind int

const (
	EventBalanceChanged   EventKind = 0
	EventPurchaseComplete EventKind = 1
)

type Event struct {
	Kind      EventKind
	Balance   int
	Package   *VotePackage
	Reference string
}

// Notifier fans mutations out to every mounted widget. Delivery is
// synchronous and in subscription order. There is no replay: a subscriber
// that attaches after a publish must read the store once to catch up.
type Notifier interface {
	Publish(event Event)
	Subscribe(handler func(Event)) (unsubscribe func())
}
