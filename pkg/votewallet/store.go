package votewallet

import (
	"io"
)

// Store is the persistence substrate behind the wallet. Values are always
// read and written whole; there are no partial or field-level updates.
// Implementations reset corrupt values to their zero value instead of
// returning them, so a successful read is always well-formed.
type Store interface {
	io.Closer

	Balance() (int, error)
	SetBalance(balance int) error

	Tallies() (map[string]int, error)
	SetTallies(tallies map[string]int) error

	UserVotes(contestantID string) (int, error)
	SetUserVotes(contestantID string, votes int) error

	AuthToken() (string, error)
	SetAuthToken(token string) error
}
