package negotiation

import (
	"reflect"
	"testing"
)

func TestSummarizeIsIdempotent(t *testing.T) {
	st := NewState(testProduct(), 216000)
	st.AppendSellerOffer(270000, "opening")
	st.SetRound(1)
	st.AppendBuyerOffer(117000, "anchor")
	st.AppendSellerOffer(250000, "counter")
	st.SetRound(2)
	st.AppendBuyerOffer(162000, "meet me")
	st.AppendSellerMessage("deal")

	first := Summarize(st, true, 162000)
	second := Summarize(st, true, 162000)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("summaries differ:\n%+v\n%+v", first, second)
	}
	if len(st.Transcript()) != 5 {
		t.Fatalf("summarize must not touch the state, transcript: %d", len(st.Transcript()))
	}
	if first.Savings != 216000-162000 {
		t.Fatalf("savings = %d", first.Savings)
	}
}

func TestSummarizeNoDeal(t *testing.T) {
	st := NewState(testProduct(), 216000)
	st.AppendSellerOffer(270000, "opening")
	st.SetRound(1)
	st.AppendBuyerOffer(117000, "anchor")

	res := Summarize(st, false, 0)
	if res.DealMade {
		t.Fatalf("unexpected deal: %+v", res)
	}
	if res.FinalPrice != 0 || res.Savings != 0 || res.SavingsPct != 0 || res.BelowMarketPct != 0 {
		t.Fatalf("price fields must stay zero without a deal: %+v", res)
	}
	if res.Rounds != 1 || len(res.Transcript) != 2 {
		t.Fatalf("rounds/transcript mismatch: %+v", res)
	}
}
