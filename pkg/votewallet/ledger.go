package votewallet

import (
	"context"
	"time"
)

type VerifyPurchaseRequest struct {
	PackageID string
	Votes     int
	Amount    int
	Reference string
	UserEmail string
}

type CastVoteRequest struct {
	ContestantID string
	Votes        int
	VoteID       string
	Timestamp    time.Time
}

// Ledger is the optional remote record of purchases and casts. Every
// method may fail with ErrRemoteUnavailable; callers decide whether that
// degrades to local-only operation or becomes a hard error.
type Ledger interface {
	VerifyPurchase(ctx context.Context, request *VerifyPurchaseRequest) error
	CastVote(ctx context.Context, request *CastVoteRequest) error
	VotingHistory(ctx context.Context) ([]VoteRecord, error)
	PurchaseHistory(ctx context.Context) ([]PurchaseRecord, error)
	Leaderboard(ctx context.Context) ([]LeaderboardEntry, error)
}
