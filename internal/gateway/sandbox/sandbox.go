package sandbox

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

// Decision decides whether a checkout completes. Returning false stands
// in for the payer closing the provider's checkout window.
type Decision func(request *votewallet.CheckoutRequest) bool

type sandboxGateway struct {
	decision Decision
}

type Option func(g *sandboxGateway)

func WithDecision(decision Decision) Option {
	return func(g *sandboxGateway) {
		g.decision = decision
	}
}

// New returns a Gateway that collects no money: every checkout completes
// immediately with the caller's reference. It stands in for the real
// payment provider in demo and test environments.
func New(options ...Option) votewallet.Gateway {
	result := &sandboxGateway{}

	for _, option := range options {
		option(result)
	}

	return result
}

func (g *sandboxGateway) Checkout(ctx context.Context,
	request *votewallet.CheckoutRequest) (*votewallet.CheckoutResult, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if g.decision != nil && !g.decision(request) {
		return &votewallet.CheckoutResult{Completed: false}, nil
	}

	logrus.WithFields(logrus.Fields{
		"reference": request.Reference,
		"amount":    request.Amount,
		"currency":  request.Currency,
	}).Info("sandbox checkout completed")

	return &votewallet.CheckoutResult{
		Completed: true,
		Reference: request.Reference,
	}, nil
}
