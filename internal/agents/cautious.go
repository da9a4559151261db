package agents

import (
	"context"
	"fmt"

	"ai-negotiator/internal/negotiation"
)

const (
	cautiousOpeningShare = 0.60
	cautiousAcceptShare  = 0.85
	cautiousRaiseFactor  = 1.1
)

// CautiousBuyer creeps upward in small increments and only accepts a clear
// discount. When its counter lands within a whisker of the seller's price it
// settles just under the ask instead of overshooting.
type CautiousBuyer struct{}

func NewCautiousBuyer() *CautiousBuyer { return &CautiousBuyer{} }

func (b *CautiousBuyer) Name() string { return "cautious" }

func (b *CautiousBuyer) GenerateOpeningOffer(_ context.Context, state *negotiation.State) (int, string) {
	opening := int(float64(state.Product().BaseMarketPrice) * cautiousOpeningShare)
	if opening > state.BuyerBudget() {
		opening = state.BuyerBudget()
	}
	return opening, fmt.Sprintf("I'm interested, but ₹%d is what I can offer. Let me think about that...", opening)
}

func (b *CautiousBuyer) RespondToSellerOffer(_ context.Context, state *negotiation.State, sellerPrice int, _ string) (negotiation.DealStatus, int, string) {
	budget := state.BuyerBudget()
	market := state.Product().BaseMarketPrice
	if sellerPrice <= budget && float64(sellerPrice) <= float64(market)*cautiousAcceptShare {
		return negotiation.StatusAccepted, sellerPrice, fmt.Sprintf("Alright, ₹%d works for me!", sellerPrice)
	}

	last, _ := state.LastBuyerOffer()
	counter := int(float64(last) * cautiousRaiseFactor)
	if counter > budget {
		counter = budget
	}
	if float64(counter) >= float64(sellerPrice)*0.95 {
		counter = sellerPrice - 1000
		if counter > budget {
			counter = budget
		}
		return negotiation.StatusOngoing, counter, fmt.Sprintf("That's a bit steep for me. How about ₹%d?", counter)
	}
	return negotiation.StatusOngoing, counter, fmt.Sprintf("I can go up to ₹%d, but that's pushing my budget.", counter)
}
