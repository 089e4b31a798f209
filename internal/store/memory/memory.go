package memory

import (
	"sync"

	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

type memoryStore struct {
	mutex     sync.Mutex
	closed    bool
	balance   int
	tallies   map[string]int
	userVotes map[string]int
	authToken string
}

// New returns an in-process Store. State lives for the lifetime of the
// process only; useful for tests and ephemeral sessions.
func New() votewallet.Store {
	return &memoryStore{
		tallies:   make(map[string]int),
		userVotes: make(map[string]int),
	}
}

func (m *memoryStore) Balance() (int, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.closed {
		return 0, votewallet.ErrClosed
	}

	return m.balance, nil
}

func (m *memoryStore) SetBalance(balance int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.closed {
		return votewallet.ErrClosed
	}

	m.balance = balance
	return nil
}

func (m *memoryStore) Tallies() (map[string]int, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.closed {
		return nil, votewallet.ErrClosed
	}

	result := make(map[string]int, len(m.tallies))
	for contestantID, votes := range m.tallies {
		result[contestantID] = votes
	}

	return result, nil
}

func (m *memoryStore) SetTallies(tallies map[string]int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.closed {
		return votewallet.ErrClosed
	}

	next := make(map[string]int, len(tallies))
	for contestantID, votes := range tallies {
		next[contestantID] = votes
	}
	m.tallies = next

	return nil
}

func (m *memoryStore) UserVotes(contestantID string) (int, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.closed {
		return 0, votewallet.ErrClosed
	}

	return m.userVotes[contestantID], nil
}

func (m *memoryStore) SetUserVotes(contestantID string, votes int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.closed {
		return votewallet.ErrClosed
	}

	m.userVotes[contestantID] = votes
	return nil
}

func (m *memoryStore) AuthToken() (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.closed {
		return "", votewallet.ErrClosed
	}

	return m.authToken, nil
}

func (m *memoryStore) SetAuthToken(token string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.closed {
		return votewallet.ErrClosed
	}

	m.authToken = token
	return nil
}

func (m *memoryStore) Close() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.closed = true
	return nil
}
