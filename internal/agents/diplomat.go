package agents

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"ai-negotiator/internal/negotiation"
)

// Concession schedule: counters move by a share of the seller's standing
// price, small while the anchor does its work and larger once the round cap
// gets close.
const (
	diplomatAnchorShare  = 0.65
	diplomatAcceptShare  = 0.90
	diplomatEarlyCutoff  = 3
	diplomatMidCutoff    = 7
	diplomatPressureFrom = 8
)

// mirrorPhrases are echoed back when the seller's pitch mentions them.
var mirrorPhrases = []string{
	"quality", "market", "best price", "value", "fair",
	"discount", "offer", "deal", "partnership",
}

// DiplomatBuyer anchors low and concedes on a round-based schedule, mirroring
// the seller's own vocabulary to keep the exchange warm. It accepts only a
// price that clears both the budget and a discount threshold against market.
type DiplomatBuyer struct {
	rng *rand.Rand
}

// NewDiplomatBuyer builds the default deterministic buyer. rng drives only
// message phrasing; pass a seeded source for reproducible transcripts.
func NewDiplomatBuyer(rng *rand.Rand) *DiplomatBuyer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &DiplomatBuyer{rng: rng}
}

func (b *DiplomatBuyer) Name() string { return "diplomat" }

func (b *DiplomatBuyer) GenerateOpeningOffer(_ context.Context, state *negotiation.State) (int, string) {
	anchor := int(float64(state.Product().BaseMarketPrice) * diplomatAnchorShare)
	if anchor > state.BuyerBudget() {
		anchor = state.BuyerBudget()
	}
	msg := fmt.Sprintf("I'll begin with ₹%d. It's a figure that respects the market, yet leaves us room to grow this deal together.", anchor)
	return anchor, msg
}

func (b *DiplomatBuyer) RespondToSellerOffer(_ context.Context, state *negotiation.State, sellerPrice int, sellerMessage string) (negotiation.DealStatus, int, string) {
	market := state.Product().BaseMarketPrice
	if sellerPrice <= state.BuyerBudget() && float64(sellerPrice) <= float64(market)*diplomatAcceptShare {
		return negotiation.StatusAccepted, sellerPrice, fmt.Sprintf("Agreed. ₹%d is a wise foundation for partnership.", sellerPrice)
	}

	counter := b.nextCounter(state, sellerPrice)
	msg := b.mirrorAndFrame(sellerMessage, counter)
	if state.CurrentRound() >= diplomatPressureFrom {
		msg += " Let us not lose time over what already feels inevitable."
	}
	return negotiation.StatusOngoing, counter, msg
}

// nextCounter moves the previous offer by a share of the seller's price,
// never past the budget and always strictly below the seller's number.
func (b *DiplomatBuyer) nextCounter(state *negotiation.State, sellerPrice int) int {
	last, ok := state.LastBuyerOffer()
	if !ok {
		last = state.BuyerBudget()
	}

	var share float64
	switch round := state.CurrentRound(); {
	case round < diplomatEarlyCutoff:
		share = 0.05
	case round < diplomatMidCutoff:
		share = 0.10
	default:
		share = 0.15
	}

	counter := last + int(float64(sellerPrice)*share)
	if counter > state.BuyerBudget() {
		counter = state.BuyerBudget()
	}
	if counter >= sellerPrice {
		counter = sellerPrice - 1
	}
	return counter
}

func (b *DiplomatBuyer) mirrorAndFrame(sellerMessage string, counter int) string {
	lowered := strings.ToLower(sellerMessage)
	var echoed []string
	for _, phrase := range mirrorPhrases {
		if strings.Contains(lowered, phrase) {
			echoed = append(echoed, phrase)
		}
	}

	prefix := ""
	if len(echoed) > 0 {
		prefix = fmt.Sprintf("I understand your focus on %s. ", strings.Join(echoed, ", "))
	}

	templates := []string{
		fmt.Sprintf("%sI believe ₹%d reflects the true value considering all factors.", prefix, counter),
		fmt.Sprintf("%sMy offer of ₹%d is carefully calculated to benefit both parties.", prefix, counter),
		fmt.Sprintf("%sLet's move forward with ₹%d - a number that respects both market realities and our partnership.", prefix, counter),
	}
	return templates[b.rng.Intn(len(templates))]
}
