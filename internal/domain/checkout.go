package domain

import "context"

// CheckoutSession is a payment session created by the checkout function.
// The client performs a full-page navigation to URL.
type CheckoutSession struct {
	URL string `json:"url"`
}

type CheckoutService interface {
	CreateSession(ctx context.Context, userID string, token string) (*CheckoutSession, error)
}
