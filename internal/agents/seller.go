package agents

import (
	"context"
	"fmt"

	"ai-negotiator/internal/negotiation"
)

// Seller pricing policy: open high, protect the floor, and shrink the markup
// on buyer offers once the session enters its final stretch.
const (
	sellerOpeningFactor = 1.5
	sellerMarginFactor  = 1.1
	sellerEarlyMarkup   = 1.15
	sellerLateMarkup    = 1.05
	sellerCloseoutRound = 9 // final stretch of the default ten-round cap
)

// Seller is the counterparty every buyer negotiates against. It never counters
// below its configured minimum and accepts any offer that clears the minimum
// plus margin.
type Seller struct {
	minPrice int
}

func NewSeller(minPrice int) *Seller {
	return &Seller{minPrice: minPrice}
}

func (s *Seller) GetOpeningPrice(_ context.Context, product negotiation.Product) (int, string) {
	price := int(float64(product.BaseMarketPrice) * sellerOpeningFactor)
	return price, fmt.Sprintf("These are premium %s grade %s. I'm asking ₹%d.", product.Grade, product.Name, price)
}

func (s *Seller) RespondToBuyer(_ context.Context, buyerOffer, round int) (int, string, bool) {
	if float64(buyerOffer) >= float64(s.minPrice)*sellerMarginFactor {
		return buyerOffer, fmt.Sprintf("You have a deal at ₹%d!", buyerOffer), true
	}

	if round >= sellerCloseoutRound {
		counter := s.floorAt(int(float64(buyerOffer) * sellerLateMarkup))
		return counter, fmt.Sprintf("Final offer: ₹%d. Take it or leave it.", counter), false
	}
	counter := s.floorAt(int(float64(buyerOffer) * sellerEarlyMarkup))
	return counter, fmt.Sprintf("I can come down to ₹%d.", counter), false
}

func (s *Seller) floorAt(counter int) int {
	if counter < s.minPrice {
		return s.minPrice
	}
	return counter
}
