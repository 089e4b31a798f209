package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

const defaultTimeout = 10 * time.Second

type restLedger struct {
	baseURL string
	client  *http.Client
	store   votewallet.Store
}

type Option func(l *restLedger)

func WithHTTPClient(client *http.Client) Option {
	return func(l *restLedger) {
		l.client = client
	}
}

// New returns a Ledger speaking the backend REST boundary. The bearer
// token is read from the store on every call; a missing token is
// tolerated and the call proceeds unauthenticated.
func New(baseURL string, store votewallet.Store, options ...Option) votewallet.Ledger {
	result := &restLedger{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
		store:   store,
	}

	for _, option := range options {
		option(result)
	}

	return result
}

type purchaseBody struct {
	PackageID string `json:"packageId"`
	Votes     int    `json:"votes"`
	Amount    int    `json:"amount"`
	Reference string `json:"reference"`
	UserEmail string `json:"userEmail"`
}

type castBody struct {
	ContestantID string `json:"contestantId"`
	Votes        int    `json:"votes"`
	VoteID       string `json:"voteId"`
	Timestamp    string `json:"timestamp"`
}

type voteRecordBody struct {
	VoteID       string    `json:"voteId"`
	ContestantID string    `json:"contestantId"`
	Votes        int       `json:"votes"`
	Timestamp    time.Time `json:"timestamp"`
}

type purchaseRecordBody struct {
	Reference string    `json:"reference"`
	PackageID string    `json:"packageId"`
	Votes     int       `json:"votes"`
	Amount    int       `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

type leaderboardEntryBody struct {
	ContestantID string `json:"contestantId"`
	Votes        int    `json:"votes"`
}

func (l *restLedger) VerifyPurchase(ctx context.Context,
	request *votewallet.VerifyPurchaseRequest) error {

	return l.post(ctx, "/votes/purchase", purchaseBody{
		PackageID: request.PackageID,
		Votes:     request.Votes,
		Amount:    request.Amount,
		Reference: request.Reference,
		UserEmail: request.UserEmail,
	})
}

func (l *restLedger) CastVote(ctx context.Context,
	request *votewallet.CastVoteRequest) error {

	return l.post(ctx, "/votes/cast", castBody{
		ContestantID: request.ContestantID,
		Votes:        request.Votes,
		VoteID:       request.VoteID,
		Timestamp:    request.Timestamp.UTC().Format(time.RFC3339),
	})
}

func (l *restLedger) VotingHistory(ctx context.Context) ([]votewallet.VoteRecord, error) {
	var body []voteRecordBody
	if err := l.get(ctx, "/votes/history", &body); err != nil {
		return nil, err
	}

	result := make([]votewallet.VoteRecord, 0, len(body))
	for _, record := range body {
		result = append(result, votewallet.VoteRecord{
			VoteID:       record.VoteID,
			ContestantID: record.ContestantID,
			Votes:        record.Votes,
			CastAt:       record.Timestamp,
		})
	}

	return result, nil
}

func (l *restLedger) PurchaseHistory(ctx context.Context) ([]votewallet.PurchaseRecord, error) {
	var body []purchaseRecordBody
	if err := l.get(ctx, "/votes/purchases", &body); err != nil {
		return nil, err
	}

	result := make([]votewallet.PurchaseRecord, 0, len(body))
	for _, record := range body {
		result = append(result, votewallet.PurchaseRecord{
			Reference: record.Reference,
			PackageID: record.PackageID,
			Votes:     record.Votes,
			Amount:    record.Amount,
			PaidAt:    record.Timestamp,
		})
	}

	return result, nil
}

func (l *restLedger) Leaderboard(ctx context.Context) ([]votewallet.LeaderboardEntry, error) {
	var body []leaderboardEntryBody
	if err := l.get(ctx, "/contestants/leaderboard", &body); err != nil {
		return nil, err
	}

	result := make([]votewallet.LeaderboardEntry, 0, len(body))
	for _, entry := range body {
		result = append(result, votewallet.LeaderboardEntry{
			ContestantID: entry.ContestantID,
			Votes:        entry.Votes,
		})
	}

	return result, nil
}

func (l *restLedger) post(ctx context.Context, path string, body interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost,
		l.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	l.authorize(request)

	response, err := l.client.Do(request)
	if err != nil {
		return errors.Wrap(votewallet.ErrRemoteUnavailable, err.Error())
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return errors.Wrapf(votewallet.ErrRemoteUnavailable,
			"unexpected status %d from %s", response.StatusCode, path)
	}

	return nil
}

func (l *restLedger) get(ctx context.Context, path string, out interface{}) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+path, nil)
	if err != nil {
		return err
	}
	l.authorize(request)

	response, err := l.client.Do(request)
	if err != nil {
		return errors.Wrap(votewallet.ErrRemoteUnavailable, err.Error())
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return errors.Wrapf(votewallet.ErrRemoteUnavailable,
			"unexpected status %d from %s", response.StatusCode, path)
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return errors.Wrap(votewallet.ErrRemoteUnavailable, err.Error())
	}

	return nil
}

func (l *restLedger) authorize(request *http.Request) {
	token, err := l.store.AuthToken()
	if err != nil {
		logrus.WithError(err).Debug("auth token unavailable, proceeding unauthenticated")
		return
	}

	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
}
