package balance

import (
	"github.com/sirupsen/logrus"

	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

// Balance owns the persisted vote-credit count. Reads never fail: storage
// errors are logged and surface as zero. Every successful write publishes
// a balance-changed event before returning.
type Balance struct {
	store    votewallet.Store
	notifier votewallet.Notifier
}

func New(store votewallet.Store, notifier votewallet.Notifier) *Balance {
	return &Balance{
		store:    store,
		notifier: notifier,
	}
}

func (b *Balance) Get() int {
	value, err := b.store.Balance()
	if err != nil {
		logrus.WithError(err).Error("failed to read vote balance, assuming zero")
		return 0
	}

	if value < 0 {
		return 0
	}

	return value
}

// Set persists the given balance and publishes the change. Negative
// values are a caller bug and degrade to a no-op.
func (b *Balance) Set(value int) {
	if value < 0 {
		logrus.WithField("balance", value).Warn("refusing to persist negative vote balance")
		return
	}

	if err := b.store.SetBalance(value); err != nil {
		logrus.WithError(err).Error("failed to persist vote balance")
		return
	}

	b.notifier.Publish(votewallet.Event{
		Kind:    votewallet.EventBalanceChanged,
		Balance: value,
	})
}

func (b *Balance) Increment(amount int) {
	if amount <= 0 {
		return
	}

	b.Set(b.Get() + amount)
}

// Decrement debits the balance. It refuses, without mutation, any debit
// that would take the balance below zero.
func (b *Balance) Decrement(amount int) bool {
	if amount <= 0 {
		return false
	}

	current := b.Get()
	if amount > current {
		return false
	}

	b.Set(current - amount)
	return true
}
