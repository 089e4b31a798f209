package votewallet

import (
	"context"
)

type CheckoutRequest struct {
	Reference string
	Email     string
	Amount    int
	Currency  string
	Channels  []string
	Metadata  map[string]string
}

type CheckoutResult struct {
	// Completed is false when the payer closed the checkout without
	// paying. A cancelled checkout is not an error.
	Completed bool
	Reference string
}

// Gateway is the external payment collaborator. It is trusted to collect
// money but not to authorize credit: a completed checkout still goes
// through ledger verification before the balance moves.
type Gateway interface {
	Checkout(ctx context.Context, request *CheckoutRequest) (*CheckoutResult, error)
}
