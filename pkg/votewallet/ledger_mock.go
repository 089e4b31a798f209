package votewallet

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Mock_Ledger struct {
	mock.Mock
}

func (m *Mock_Ledger) VerifyPurchase(ctx context.Context, request *VerifyPurchaseRequest) error {
	ret := m.Called(ctx, request)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *VerifyPurchaseRequest) error); ok {
		r0 = rf(ctx, request)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_Ledger) CastVote(ctx context.Context, request *CastVoteRequest) error {
	ret := m.Called(ctx, request)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *CastVoteRequest) error); ok {
		r0 = rf(ctx, request)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_Ledger) VotingHistory(ctx context.Context) ([]VoteRecord, error) {
	ret := m.Called(ctx)

	var r0 []VoteRecord
	if rf, ok := ret.Get(0).(func(ctx context.Context) []VoteRecord); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]VoteRecord)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_Ledger) PurchaseHistory(ctx context.Context) ([]PurchaseRecord, error) {
	ret := m.Called(ctx)

	var r0 []PurchaseRecord
	if rf, ok := ret.Get(0).(func(ctx context.Context) []PurchaseRecord); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]PurchaseRecord)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_Ledger) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	ret := m.Called(ctx)

	var r0 []LeaderboardEntry
	if rf, ok := ret.Get(0).(func(ctx context.Context) []LeaderboardEntry); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]LeaderboardEntry)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
