package wallet_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/culturefest/vote-wallet/internal/notifier"
	"github.com/culturefest/vote-wallet/internal/store/memory"
	"github.com/culturefest/vote-wallet/internal/wallet"
	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

var buyer = votewallet.Buyer{Name: "Demo User", Email: "user@example.com"}

type WalletTestSuite struct {
	suite.Suite

	store    votewallet.Store
	notifier votewallet.Notifier
	gateway  *votewallet.Mock_Gateway
	ledger   *votewallet.Mock_Ledger
	service  votewallet.Service
	events   []votewallet.Event
	now      time.Time
}

func TestWalletTestSuite(t *testing.T) {
	suite.Run(t, new(WalletTestSuite))
}

func (s *WalletTestSuite) TestPurchaseShouldCreditPackageVotesOnLedgerSuccess() {
	s.completeCheckouts()
	s.ledger.On("VerifyPurchase", mock.Anything, mock.Anything).Return(nil)

	response, err := s.service.Purchase(context.Background(), &votewallet.PurchaseRequest{
		PackageID: "single",
		Buyer:     buyer,
	})

	s.Nil(err)
	s.Equal(votewallet.OutcomeCompleted, response.Outcome)
	s.False(response.LocalMode)
	s.Equal(1, response.Votes)
	s.Equal(1, s.service.Balance())
}

func (s *WalletTestSuite) TestPurchaseShouldCreditLocallyWhenLedgerUnreachable() {
	s.completeCheckouts()
	s.ledger.On("VerifyPurchase", mock.Anything, mock.Anything).
		Return(votewallet.ErrRemoteUnavailable)

	response, err := s.service.Purchase(context.Background(), &votewallet.PurchaseRequest{
		PackageID: "power",
		Buyer:     buyer,
	})

	s.Nil(err)
	s.Equal(votewallet.OutcomeCompleted, response.Outcome)
	s.True(response.LocalMode)
	s.Equal(5, s.service.Balance())
}

func (s *WalletTestSuite) TestPurchaseShouldFailHardWhenFallbackDisabled() {
	s.service = wallet.New(s.store, s.notifier, s.gateway, s.ledger,
		wallet.WithLocalFallback(false))
	s.completeCheckouts()
	s.ledger.On("VerifyPurchase", mock.Anything, mock.Anything).
		Return(votewallet.ErrRemoteUnavailable)

	_, err := s.service.Purchase(context.Background(), &votewallet.PurchaseRequest{
		PackageID: "power",
		Buyer:     buyer,
	})

	s.ErrorIs(err, votewallet.ErrRemoteUnavailable)
	s.Zero(s.service.Balance())
}

func (s *WalletTestSuite) TestPurchaseShouldNotMutateOnCancelledCheckout() {
	s.gateway.On("Checkout", mock.Anything, mock.Anything).
		Return(&votewallet.CheckoutResult{Completed: false}, nil)
	s.ledger.On("VerifyPurchase", mock.Anything, mock.Anything).Return(nil)

	response, err := s.service.Purchase(context.Background(), &votewallet.PurchaseRequest{
		PackageID: "single",
		Buyer:     buyer,
	})

	s.Nil(err)
	s.Equal(votewallet.OutcomeCancelled, response.Outcome)
	s.Zero(s.service.Balance())
	s.ledger.AssertNumberOfCalls(s.T(), "VerifyPurchase", 0)
	s.Empty(s.events)
}

func (s *WalletTestSuite) TestPurchaseShouldRejectUnknownPackage() {
	_, err := s.service.Purchase(context.Background(), &votewallet.PurchaseRequest{
		PackageID: "mega",
		Buyer:     buyer,
	})

	s.ErrorIs(err, votewallet.ErrValidation)
	s.gateway.AssertNumberOfCalls(s.T(), "Checkout", 0)
}

func (s *WalletTestSuite) TestPurchaseShouldRejectIncompleteBuyer() {
	for _, invalid := range []votewallet.Buyer{
		{Name: "", Email: "user@example.com"},
		{Name: "Demo User", Email: ""},
		{Name: "Demo User", Email: "not-an-email"},
	} {
		_, err := s.service.Purchase(context.Background(), &votewallet.PurchaseRequest{
			PackageID: "single",
			Buyer:     invalid,
		})

		s.ErrorIs(err, votewallet.ErrValidation)
	}

	s.gateway.AssertNumberOfCalls(s.T(), "Checkout", 0)
	s.Zero(s.service.Balance())
}

func (s *WalletTestSuite) TestPurchaseShouldGenerateFreshReferencePerAttempt() {
	var references []string
	s.gateway.On("Checkout", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			request := args.Get(1).(*votewallet.CheckoutRequest)
			references = append(references, request.Reference)
		}).
		Return(func(ctx context.Context, request *votewallet.CheckoutRequest) *votewallet.CheckoutResult {
			return &votewallet.CheckoutResult{Completed: true, Reference: request.Reference}
		}, nil)
	s.ledger.On("VerifyPurchase", mock.Anything, mock.Anything).Return(nil)

	for i := 0; i < 2; i++ {
		_, err := s.service.Purchase(context.Background(), &votewallet.PurchaseRequest{
			PackageID: "single",
			Buyer:     buyer,
		})
		s.Nil(err)
	}

	s.Require().Len(references, 2)
	s.NotEqual(references[0], references[1])
	s.True(strings.HasPrefix(references[0], "ntac_"))
}

func (s *WalletTestSuite) TestTwoSequentialPurchasesShouldSumVotes() {
	s.completeCheckouts()
	s.ledger.On("VerifyPurchase", mock.Anything, mock.Anything).Return(nil)

	for _, packageID := range []string{"single", "power"} {
		_, err := s.service.Purchase(context.Background(), &votewallet.PurchaseRequest{
			PackageID: packageID,
			Buyer:     buyer,
		})
		s.Nil(err)
	}

	s.Equal(6, s.service.Balance())
}

func (s *WalletTestSuite) TestPurchaseShouldPublishPurchaseCompleteEvent() {
	s.completeCheckouts()
	s.ledger.On("VerifyPurchase", mock.Anything, mock.Anything).Return(nil)

	response, err := s.service.Purchase(context.Background(), &votewallet.PurchaseRequest{
		PackageID: "super",
		Buyer:     buyer,
	})
	s.Require().Nil(err)

	var complete []votewallet.Event
	for _, event := range s.events {
		if event.Kind == votewallet.EventPurchaseComplete {
			complete = append(complete, event)
		}
	}

	s.Require().Len(complete, 1)
	s.Equal("super", complete[0].Package.ID)
	s.Equal(response.Reference, complete[0].Reference)
	s.Equal(10, complete[0].Balance)
}

func (s *WalletTestSuite) TestCastShouldRejectInsufficientBalance() {
	s.ledger.On("CastVote", mock.Anything, mock.Anything).Return(nil)

	_, err := s.service.CastVote(context.Background(), &votewallet.CastRequest{
		ContestantID: "c1",
		Votes:        3,
	})

	s.ErrorIs(err, votewallet.ErrInsufficientBalance)
	s.Zero(s.service.Balance())
	s.Zero(s.service.ContestantTally("c1"))
	s.ledger.AssertNumberOfCalls(s.T(), "CastVote", 0)
}

func (s *WalletTestSuite) TestCastShouldApplyAllThreeFieldsOnRemoteSuccess() {
	s.seedBalance(10)
	s.ledger.On("CastVote", mock.Anything, mock.Anything).Return(nil)

	response, err := s.service.CastVote(context.Background(), &votewallet.CastRequest{
		ContestantID: "c1",
		Votes:        3,
	})

	s.Nil(err)
	s.False(response.LocalMode)
	s.NotEmpty(response.VoteID)
	s.Equal(7, s.service.Balance())
	s.Equal(3, s.service.ContestantTally("c1"))
	s.Equal(3, s.service.UserVotes("c1"))
}

func (s *WalletTestSuite) TestCastShouldApplyLocallyWhenLedgerUnreachable() {
	s.seedBalance(10)
	s.ledger.On("CastVote", mock.Anything, mock.Anything).
		Return(votewallet.ErrRemoteUnavailable)

	response, err := s.service.CastVote(context.Background(), &votewallet.CastRequest{
		ContestantID: "c1",
		Votes:        3,
	})

	s.Nil(err)
	s.True(response.LocalMode)
	s.Equal(7, s.service.Balance())
	s.Equal(3, s.service.ContestantTally("c1"))
	s.Equal(3, s.service.UserVotes("c1"))
}

func (s *WalletTestSuite) TestCastShouldFailHardWhenFallbackDisabled() {
	s.service = wallet.New(s.store, s.notifier, s.gateway, s.ledger,
		wallet.WithLocalFallback(false))
	s.seedBalance(10)
	s.ledger.On("CastVote", mock.Anything, mock.Anything).
		Return(votewallet.ErrRemoteUnavailable)

	_, err := s.service.CastVote(context.Background(), &votewallet.CastRequest{
		ContestantID: "c1",
		Votes:        3,
	})

	s.ErrorIs(err, votewallet.ErrRemoteUnavailable)
	s.Equal(10, s.service.Balance())
	s.Zero(s.service.ContestantTally("c1"))
	s.Zero(s.service.UserVotes("c1"))
}

func (s *WalletTestSuite) TestCastShouldRejectInvalidRequests() {
	s.seedBalance(10)

	_, err := s.service.CastVote(context.Background(), &votewallet.CastRequest{
		ContestantID: "",
		Votes:        1,
	})
	s.ErrorIs(err, votewallet.ErrValidation)

	_, err = s.service.CastVote(context.Background(), &votewallet.CastRequest{
		ContestantID: "c1",
		Votes:        0,
	})
	s.ErrorIs(err, votewallet.ErrValidation)

	s.Equal(10, s.service.Balance())
}

func (s *WalletTestSuite) TestDoubleCastShouldProduceTwoDebits() {
	// Two casts of the same logical vote carry distinct tokens and both
	// debit. Idempotency is the ledger's problem, not the client's.
	s.seedBalance(10)

	var voteIDs []string
	s.ledger.On("CastVote", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			request := args.Get(1).(*votewallet.CastVoteRequest)
			voteIDs = append(voteIDs, request.VoteID)
		}).
		Return(nil)

	for i := 0; i < 2; i++ {
		_, err := s.service.CastVote(context.Background(), &votewallet.CastRequest{
			ContestantID: "c1",
			Votes:        2,
		})
		s.Nil(err)
	}

	s.Require().Len(voteIDs, 2)
	s.NotEqual(voteIDs[0], voteIDs[1])
	s.Equal(6, s.service.Balance())
	s.Equal(4, s.service.ContestantTally("c1"))
}

func (s *WalletTestSuite) TestCastShouldSendContestantCountAndTimestamp() {
	s.seedBalance(5)

	var sent *votewallet.CastVoteRequest
	s.ledger.On("CastVote", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*votewallet.CastVoteRequest)
		}).
		Return(nil)

	_, err := s.service.CastVote(context.Background(), &votewallet.CastRequest{
		ContestantID: "c1",
		Votes:        2,
	})

	s.Nil(err)
	s.Require().NotNil(sent)
	s.Equal("c1", sent.ContestantID)
	s.Equal(2, sent.Votes)
	s.Equal(s.now, sent.Timestamp)
}

func (s *WalletTestSuite) TestCastShouldPublishBalanceChange() {
	s.seedBalance(5)
	s.events = nil
	s.ledger.On("CastVote", mock.Anything, mock.Anything).Return(nil)

	_, err := s.service.CastVote(context.Background(), &votewallet.CastRequest{
		ContestantID: "c1",
		Votes:        2,
	})

	s.Nil(err)
	s.Require().Len(s.events, 1)
	s.Equal(votewallet.EventBalanceChanged, s.events[0].Kind)
	s.Equal(3, s.events[0].Balance)
}

func (s *WalletTestSuite) TestLeaderboardShouldPreferRemoteEntries() {
	s.ledger.On("Leaderboard", mock.Anything).Return([]votewallet.LeaderboardEntry{
		{ContestantID: "c9", Votes: 99},
	}, nil)

	response, err := s.service.Leaderboard(context.Background())

	s.Nil(err)
	s.False(response.Local)
	s.Require().Len(response.Entries, 1)
	s.Equal("c9", response.Entries[0].ContestantID)
}

func (s *WalletTestSuite) TestLeaderboardShouldFallBackToSortedLocalTallies() {
	s.Nil(s.store.SetTallies(map[string]int{"c1": 3, "c2": 7, "c3": 3}))
	s.ledger.On("Leaderboard", mock.Anything).
		Return(nil, votewallet.ErrRemoteUnavailable)

	response, err := s.service.Leaderboard(context.Background())

	s.Nil(err)
	s.True(response.Local)
	s.Equal([]votewallet.LeaderboardEntry{
		{ContestantID: "c2", Votes: 7},
		{ContestantID: "c1", Votes: 3},
		{ContestantID: "c3", Votes: 3},
	}, response.Entries)
}

func (s *WalletTestSuite) TestVotingHistoryShouldDegradeToEmptyWhenUnavailable() {
	s.ledger.On("VotingHistory", mock.Anything).
		Return(nil, votewallet.ErrRemoteUnavailable)

	records, err := s.service.VotingHistory(context.Background())

	s.Nil(err)
	s.NotNil(records)
	s.Empty(records)
}

func (s *WalletTestSuite) TestPurchaseHistoryShouldDegradeToEmptyWhenUnavailable() {
	s.ledger.On("PurchaseHistory", mock.Anything).
		Return(nil, votewallet.ErrRemoteUnavailable)

	records, err := s.service.PurchaseHistory(context.Background())

	s.Nil(err)
	s.Empty(records)
}

func (s *WalletTestSuite) completeCheckouts() {
	s.gateway.On("Checkout", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, request *votewallet.CheckoutRequest) *votewallet.CheckoutResult {
			return &votewallet.CheckoutResult{Completed: true, Reference: request.Reference}
		}, nil)
}

func (s *WalletTestSuite) seedBalance(votes int) {
	if err := s.store.SetBalance(votes); err != nil {
		s.FailNow("failed to seed balance")
	}
}

func (s *WalletTestSuite) SetupTest() {
	s.store = memory.New()
	s.notifier = notifier.New()
	s.gateway = &votewallet.Mock_Gateway{}
	s.ledger = &votewallet.Mock_Ledger{}
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.events = nil

	s.notifier.Subscribe(func(event votewallet.Event) {
		s.events = append(s.events, event)
	})

	s.service = wallet.New(s.store, s.notifier, s.gateway, s.ledger,
		wallet.WithClock(func() time.Time { return s.now }))
}
