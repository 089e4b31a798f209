package votewallet

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Mock_Gateway struct {
	mock.Mock
}

func (m *Mock_Gateway) Checkout(ctx context.Context,
	request *CheckoutRequest) (*CheckoutResult, error) {

	ret := m.Called(ctx, request)

	var r0 *CheckoutResult
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *CheckoutRequest) *CheckoutResult); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*CheckoutResult)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context, request *CheckoutRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
