package negotiation

import (
	"context"
	"fmt"
	"log"
)

// BuyerAgent decides, given the visible state and the seller's latest price,
// whether to accept or counter. GenerateOpeningOffer is called once on the
// first round; RespondToSellerOffer on every round after that. Returned
// prices must stay within the buyer budget; the engine clamps violations but
// treats them as strategy defects.
type BuyerAgent interface {
	Name() string
	GenerateOpeningOffer(ctx context.Context, state *State) (int, string)
	RespondToSellerOffer(ctx context.Context, state *State, sellerPrice int, sellerMessage string) (DealStatus, int, string)
}

// SellerAgent opens the bidding and reacts to buyer offers. It accepts by
// returning accepted=true, in which case the counter price is ignored and the
// buyer's offer becomes the deal price.
type SellerAgent interface {
	GetOpeningPrice(ctx context.Context, product Product) (int, string)
	RespondToBuyer(ctx context.Context, buyerOffer, round int) (int, string, bool)
}

// Engine drives a single session through the round loop: seller opens, then
// buyer and seller alternate until one side accepts or the round cap runs
// out. The engine owns the state; strategies only read it.
type Engine struct {
	buyer     BuyerAgent
	seller    SellerAgent
	maxRounds int
	phase     Phase
	status    DealStatus
}

func NewEngine(buyer BuyerAgent, seller SellerAgent, maxRounds int) *Engine {
	return &Engine{
		buyer:     buyer,
		seller:    seller,
		maxRounds: maxRounds,
		phase:     PhaseNotStarted,
		status:    StatusOngoing,
	}
}

// Phase reports where the engine currently is in the session state machine.
func (e *Engine) Phase() Phase { return e.phase }

// Status reports how the last Run concluded: StatusAccepted after a deal,
// StatusTimeout after round-cap exhaustion, StatusOngoing mid-run.
func (e *Engine) Status() DealStatus { return e.status }

// Run executes the session to completion and computes the result record.
// It returns an error only for invalid session parameters; a timeout is a
// legitimate outcome, not an error.
func (e *Engine) Run(ctx context.Context, state *State) (Result, error) {
	e.phase = PhaseNotStarted
	e.status = StatusOngoing
	if err := validateSession(state, e.maxRounds); err != nil {
		return Result{}, fmt.Errorf("invalid session: %w", err)
	}

	// Seller opens the bidding before round 1.
	sellerPrice, sellerMsg := e.seller.GetOpeningPrice(ctx, state.Product())
	state.AppendSellerOffer(sellerPrice, sellerMsg)

	dealMade := false
	finalPrice := 0

	for round := 1; round <= e.maxRounds; round++ {
		state.SetRound(round)
		e.phase = PhaseAwaitingBuyer

		var (
			status     DealStatus
			buyerOffer int
			buyerMsg   string
		)
		if round == 1 {
			buyerOffer, buyerMsg = e.buyer.GenerateOpeningOffer(ctx, state)
			status = StatusOngoing
		} else {
			status, buyerOffer, buyerMsg = e.buyer.RespondToSellerOffer(ctx, state, sellerPrice, sellerMsg)
		}
		status, buyerOffer = e.sanitizeBuyerTurn(status, buyerOffer, sellerPrice, state.BuyerBudget())
		state.AppendBuyerOffer(buyerOffer, buyerMsg)

		if status == StatusAccepted {
			dealMade = true
			finalPrice = sellerPrice
			break
		}

		e.phase = PhaseAwaitingSeller
		counter, counterMsg, accepted := e.seller.RespondToBuyer(ctx, buyerOffer, round)
		if accepted {
			state.AppendSellerMessage(counterMsg)
			dealMade = true
			finalPrice = buyerOffer
			break
		}
		state.AppendSellerOffer(counter, counterMsg)
		sellerPrice, sellerMsg = counter, counterMsg
	}

	if dealMade {
		e.status = StatusAccepted
	} else {
		e.status = StatusTimeout
	}
	e.phase = PhaseConcluded
	return Summarize(state, dealMade, finalPrice), nil
}

// sanitizeBuyerTurn enforces the one unconditional invariant: no accepted
// price and no counter above the budget ceiling. Anything else a strategy
// returns is its own correctness property, verified by tests rather than
// repaired here.
func (e *Engine) sanitizeBuyerTurn(status DealStatus, offer, sellerPrice, budget int) (DealStatus, int) {
	if status == StatusAccepted {
		if sellerPrice <= budget {
			return StatusAccepted, sellerPrice
		}
		log.Printf("⚠️ buyer %s accepted %d over budget %d, demoting to a counter", e.buyer.Name(), sellerPrice, budget)
		return StatusOngoing, budget
	}
	if offer > budget {
		log.Printf("⚠️ buyer %s offered %d over budget %d, clamping", e.buyer.Name(), offer, budget)
		offer = budget
	}
	return status, offer
}

func validateSession(state *State, maxRounds int) error {
	if maxRounds <= 0 {
		return fmt.Errorf("max rounds must be positive, got %d", maxRounds)
	}
	if state.BuyerBudget() <= 0 {
		return fmt.Errorf("buyer budget must be positive, got %d", state.BuyerBudget())
	}
	p := state.Product()
	if p.BaseMarketPrice <= 0 {
		return fmt.Errorf("base market price must be positive, got %d", p.BaseMarketPrice)
	}
	if p.Quantity <= 0 {
		return fmt.Errorf("product quantity must be positive, got %d", p.Quantity)
	}
	return nil
}
