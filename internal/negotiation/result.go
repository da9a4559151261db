package negotiation

// Result is the derived summary of one concluded session: whether a deal
// happened, at what price, and how that price relates to budget and market.
type Result struct {
	DealMade       bool      `json:"deal_made"`
	FinalPrice     int       `json:"final_price,omitempty"`
	Rounds         int       `json:"rounds"`
	Savings        int       `json:"savings"`
	SavingsPct     float64   `json:"savings_pct"`
	BelowMarketPct float64   `json:"below_market_pct"`
	Transcript     []Message `json:"conversation"`
}

// Summarize computes the result record for a finished session. It only reads
// the state, so calling it again yields an identical record.
func Summarize(state *State, dealMade bool, finalPrice int) Result {
	res := Result{
		DealMade:   dealMade,
		Rounds:     state.CurrentRound(),
		Transcript: state.Transcript(),
	}
	if !dealMade {
		return res
	}

	budget := state.BuyerBudget()
	market := state.Product().BaseMarketPrice
	res.FinalPrice = finalPrice
	res.Savings = budget - finalPrice
	res.SavingsPct = float64(budget-finalPrice) / float64(budget) * 100
	res.BelowMarketPct = float64(market-finalPrice) / float64(market) * 100
	return res
}
