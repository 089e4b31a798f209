package wallet

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/culturefest/vote-wallet/internal/balance"
	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

var defaultChannels = []string{"card", "bank", "ussd", "qr", "mobile_money", "bank_transfer"}

type walletService struct {
	store    votewallet.Store
	balance  *balance.Balance
	notifier votewallet.Notifier
	gateway  votewallet.Gateway
	ledger   votewallet.Ledger

	localFallback   bool
	referencePrefix string
	currency        string
	now             func() time.Time

	// Serializes purchase and cast flows: one in-flight mutation per
	// session, matching the single-call-stack model of the original.
	mutex sync.Mutex
}

type Option func(s *walletService)

// WithLocalFallback controls what happens when the remote ledger is
// unreachable: true credits and debits locally and flags the response as
// local mode, false turns the failure into ErrRemoteUnavailable with no
// mutation. Local fallback trusts the client and is only suitable for
// deployments without a server of record.
func WithLocalFallback(enabled bool) Option {
	return func(s *walletService) {
		s.localFallback = enabled
	}
}

func WithReferencePrefix(prefix string) Option {
	return func(s *walletService) {
		s.referencePrefix = prefix
	}
}

func WithCurrency(currency string) Option {
	return func(s *walletService) {
		s.currency = currency
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *walletService) {
		s.now = now
	}
}

func New(store votewallet.Store,
	notifier votewallet.Notifier,
	gateway votewallet.Gateway,
	ledger votewallet.Ledger,
	options ...Option) votewallet.Service {

	result := &walletService{
		store:           store,
		balance:         balance.New(store, notifier),
		notifier:        notifier,
		gateway:         gateway,
		ledger:          ledger,
		localFallback:   true,
		referencePrefix: "ntac",
		currency:        "NGN",
		now:             time.Now,
	}

	for _, option := range options {
		option(result)
	}

	return result
}

func (s *walletService) Purchase(ctx context.Context,
	request *votewallet.PurchaseRequest) (*votewallet.PurchaseResponse, error) {

	s.mutex.Lock()
	defer s.mutex.Unlock()

	pkg, ok := votewallet.PackageByID(request.PackageID)
	if !ok {
		return nil, errors.Wrapf(votewallet.ErrValidation,
			"unknown vote package %q", request.PackageID)
	}

	if err := validateBuyer(request.Buyer); err != nil {
		return nil, err
	}

	reference := s.newReference()

	checkout, err := s.gateway.Checkout(ctx, &votewallet.CheckoutRequest{
		Reference: reference,
		Email:     request.Buyer.Email,
		Amount:    pkg.Price,
		Currency:  s.currency,
		Channels:  defaultChannels,
		Metadata: map[string]string{
			"vote_package": pkg.Name,
			"vote_count":   strconv.Itoa(pkg.Votes),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "checkout failed")
	}

	if !checkout.Completed {
		return &votewallet.PurchaseResponse{
			Outcome:   votewallet.OutcomeCancelled,
			Reference: reference,
		}, nil
	}

	localMode := false
	err = s.ledger.VerifyPurchase(ctx, &votewallet.VerifyPurchaseRequest{
		PackageID: pkg.ID,
		Votes:     pkg.Votes,
		Amount:    pkg.Price,
		Reference: reference,
		UserEmail: request.Buyer.Email,
	})
	if err != nil {
		if !s.localFallback {
			return nil, err
		}

		logrus.WithError(err).WithField("reference", reference).
			Warn("ledger unreachable, crediting purchase locally")
		localMode = true
	}

	s.balance.Increment(pkg.Votes)
	s.notifier.Publish(votewallet.Event{
		Kind:      votewallet.EventPurchaseComplete,
		Balance:   s.balance.Get(),
		Package:   &pkg,
		Reference: reference,
	})

	return &votewallet.PurchaseResponse{
		Outcome:   votewallet.OutcomeCompleted,
		Reference: reference,
		Votes:     pkg.Votes,
		LocalMode: localMode,
	}, nil
}

func (s *walletService) CastVote(ctx context.Context,
	request *votewallet.CastRequest) (*votewallet.CastResponse, error) {

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if request.ContestantID == "" {
		return nil, errors.Wrap(votewallet.ErrValidation, "contestant id is required")
	}
	if request.Votes < 1 {
		return nil, errors.Wrap(votewallet.ErrValidation, "at least one vote is required")
	}

	if s.balance.Get() < request.Votes {
		return nil, votewallet.ErrInsufficientBalance
	}

	voteID := uuid.New().String()

	localMode := false
	err := s.ledger.CastVote(ctx, &votewallet.CastVoteRequest{
		ContestantID: request.ContestantID,
		Votes:        request.Votes,
		VoteID:       voteID,
		Timestamp:    s.now(),
	})
	if err != nil {
		if !s.localFallback {
			return nil, err
		}

		logrus.WithError(err).WithField("voteId", voteID).
			Warn("ledger unreachable, recording vote locally")
		localMode = true
	}

	return s.applyCast(request, voteID, localMode), nil
}

// applyCast performs the three local mutations of a cast as one
// uninterrupted sequence: balance debit, contestant tally, personal
// record. The precondition check already passed, so a refused debit is an
// inconsistency we log rather than surface.
func (s *walletService) applyCast(request *votewallet.CastRequest,
	voteID string, localMode bool) *votewallet.CastResponse {

	if !s.balance.Decrement(request.Votes) {
		logrus.WithFields(logrus.Fields{
			"voteId":     voteID,
			"contestant": request.ContestantID,
			"votes":      request.Votes,
		}).Error("balance changed during cast, skipping local apply")

		return &votewallet.CastResponse{
			VoteID:    voteID,
			Balance:   s.balance.Get(),
			LocalMode: localMode,
		}
	}

	tally := s.bumpTally(request.ContestantID, request.Votes)
	personal := s.bumpUserVotes(request.ContestantID, request.Votes)

	return &votewallet.CastResponse{
		VoteID:    voteID,
		Balance:   s.balance.Get(),
		Tally:     tally,
		UserVotes: personal,
		LocalMode: localMode,
	}
}

func (s *walletService) bumpTally(contestantID string, votes int) int {
	tallies, err := s.store.Tallies()
	if err != nil {
		logrus.WithError(err).Error("failed to read contestant tallies")
		return 0
	}

	tallies[contestantID] += votes
	if err := s.store.SetTallies(tallies); err != nil {
		logrus.WithError(err).Error("failed to persist contestant tallies")
	}

	return tallies[contestantID]
}

func (s *walletService) bumpUserVotes(contestantID string, votes int) int {
	current, err := s.store.UserVotes(contestantID)
	if err != nil {
		logrus.WithError(err).Error("failed to read personal vote record")
		return 0
	}

	next := current + votes
	if err := s.store.SetUserVotes(contestantID, next); err != nil {
		logrus.WithError(err).Error("failed to persist personal vote record")
	}

	return next
}

func (s *walletService) Balance() int {
	return s.balance.Get()
}

func (s *walletService) ContestantTally(contestantID string) int {
	tallies, err := s.store.Tallies()
	if err != nil {
		logrus.WithError(err).Error("failed to read contestant tallies")
		return 0
	}

	return tallies[contestantID]
}

func (s *walletService) UserVotes(contestantID string) int {
	votes, err := s.store.UserVotes(contestantID)
	if err != nil {
		logrus.WithError(err).Error("failed to read personal vote record")
		return 0
	}

	return votes
}

func (s *walletService) VotingHistory(ctx context.Context) ([]votewallet.VoteRecord, error) {
	records, err := s.ledger.VotingHistory(ctx)
	if err != nil {
		logrus.WithError(err).Warn("voting history unavailable")
		return []votewallet.VoteRecord{}, nil
	}

	return records, nil
}

func (s *walletService) PurchaseHistory(ctx context.Context) ([]votewallet.PurchaseRecord, error) {
	records, err := s.ledger.PurchaseHistory(ctx)
	if err != nil {
		logrus.WithError(err).Warn("purchase history unavailable")
		return []votewallet.PurchaseRecord{}, nil
	}

	return records, nil
}

func (s *walletService) Leaderboard(ctx context.Context) (*votewallet.LeaderboardResponse, error) {
	entries, err := s.ledger.Leaderboard(ctx)
	if err == nil {
		return &votewallet.LeaderboardResponse{Entries: entries}, nil
	}

	logrus.WithError(err).Warn("remote leaderboard unavailable, using local tallies")

	tallies, err := s.store.Tallies()
	if err != nil {
		return nil, err
	}

	local := make([]votewallet.LeaderboardEntry, 0, len(tallies))
	for contestantID, votes := range tallies {
		local = append(local, votewallet.LeaderboardEntry{
			ContestantID: contestantID,
			Votes:        votes,
		})
	}

	sort.Slice(local, func(i, j int) bool {
		if local[i].Votes != local[j].Votes {
			return local[i].Votes > local[j].Votes
		}

		return local[i].ContestantID < local[j].ContestantID
	})

	return &votewallet.LeaderboardResponse{Entries: local, Local: true}, nil
}

func (s *walletService) Close() error {
	return s.store.Close()
}

func (s *walletService) newReference() string {
	return fmt.Sprintf("%s_%d_%06d",
		s.referencePrefix, s.now().UnixMilli(), rand.Intn(1000000))
}

func validateBuyer(buyer votewallet.Buyer) error {
	if buyer.Name == "" {
		return errors.Wrap(votewallet.ErrValidation, "buyer name is required")
	}
	if buyer.Email == "" {
		return errors.Wrap(votewallet.ErrValidation, "buyer email is required")
	}
	if !strings.Contains(buyer.Email, "@") {
		return errors.Wrap(votewallet.ErrValidation, "buyer email is malformed")
	}

	return nil
}
