package votewallet

import (
	"context"
	"io"
	"time"
)

type PurchaseOutcome int

const (
	OutcomeCompleted PurchaseOutcome = 0
	OutcomeCancelled PurchaseOutcome = 1
)

// Buyer is the payer identity attached to a purchase attempt.
type Buyer struct {
	Name  string
	Email string
}

type PurchaseRequest struct {
	PackageID string
	Buyer     Buyer
}

type PurchaseResponse struct {
	Outcome   PurchaseOutcome
	Reference string
	Votes     int

	// LocalMode is set when the remote ledger could not confirm the
	// purchase and the credit was applied locally instead.
	LocalMode bool
}

type CastRequest struct {
	ContestantID string
	Votes        int
}

type CastResponse struct {
	VoteID    string
	Balance   int
	Tally     int
	UserVotes int
	LocalMode bool
}

type VoteRecord struct {
	VoteID       string
	ContestantID string
	Votes        int
	CastAt       time.Time
}

type PurchaseRecord struct {
	Reference string
	PackageID string
	Votes     int
	Amount    int
	PaidAt    time.Time
}

type LeaderboardEntry struct {
	ContestantID string
	Votes        int
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry

	// Local is set when the entries were computed from the locally
	// persisted tallies rather than fetched from the remote ledger.
	Local bool
}

// Service is the vote wallet: it owns the purchase and cast flows and is
// the only writer of the persisted balance, tallies and personal records.
type Service interface {
	io.Closer

	Purchase(ctx context.Context, request *PurchaseRequest) (*PurchaseResponse, error)
	CastVote(ctx context.Context, request *CastRequest) (*CastResponse, error)
	Balance() int
	ContestantTally(contestantID string) int
	UserVotes(contestantID string) int
	VotingHistory(ctx context.Context) ([]VoteRecord, error)
	PurchaseHistory(ctx context.Context) ([]PurchaseRecord, error)
	Leaderboard(ctx context.Context) (*LeaderboardResponse, error)
}
