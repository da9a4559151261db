package agents

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"ai-negotiator/internal/negotiation"
)

func alphonso() negotiation.Product {
	return negotiation.Product{
		Name:            "Alphonso Mangoes",
		Category:        "Mangoes",
		Quantity:        100,
		Grade:           negotiation.GradeA,
		Origin:          "Ratnagiri",
		BaseMarketPrice: 180000,
	}
}

func stateAtRound(t *testing.T, product negotiation.Product, budget, lastBuyerOffer, round int) *negotiation.State {
	t.Helper()
	st := negotiation.NewState(product, budget)
	st.AppendSellerOffer(270000, "opening")
	st.SetRound(1)
	st.AppendBuyerOffer(lastBuyerOffer, "anchor")
	st.SetRound(round)
	return st
}

func TestDiplomatOpeningAnchor(t *testing.T) {
	b := NewDiplomatBuyer(rand.New(rand.NewSource(1)))

	st := negotiation.NewState(alphonso(), 216000)
	offer, msg := b.GenerateOpeningOffer(context.Background(), st)
	if offer != 117000 {
		t.Fatalf("opening = %d, want 65%% of market", offer)
	}
	if !strings.Contains(msg, "₹117000") {
		t.Fatalf("message should quote the offer: %q", msg)
	}

	tight := negotiation.NewState(alphonso(), 100000)
	offer, _ = b.GenerateOpeningOffer(context.Background(), tight)
	if offer != 100000 {
		t.Fatalf("opening = %d, must clamp to budget", offer)
	}
}

func TestDiplomatAcceptance(t *testing.T) {
	cases := []struct {
		name        string
		sellerPrice int
		budget      int
		wantAccept  bool
	}{
		{name: "at the discount threshold", sellerPrice: 162000, budget: 216000, wantAccept: true},
		{name: "above the discount threshold", sellerPrice: 163000, budget: 216000, wantAccept: false},
		{name: "discounted but beyond budget", sellerPrice: 160000, budget: 150000, wantAccept: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewDiplomatBuyer(rand.New(rand.NewSource(1)))
			st := stateAtRound(t, alphonso(), tc.budget, 117000, 2)

			status, _, _ := b.RespondToSellerOffer(context.Background(), st, tc.sellerPrice, "fine mangoes")
			got := status == negotiation.StatusAccepted
			if got != tc.wantAccept {
				t.Fatalf("accept = %v, want %v", got, tc.wantAccept)
			}
		})
	}
}

func TestDiplomatConcessionSchedule(t *testing.T) {
	const (
		sellerPrice = 250000
		lastOffer   = 117000
	)
	cases := []struct {
		name  string
		round int
		share float64
	}{
		{name: "early rounds move slowly", round: 2, share: 0.05},
		{name: "middle rounds move faster", round: 4, share: 0.10},
		{name: "late rounds move hardest", round: 8, share: 0.15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewDiplomatBuyer(rand.New(rand.NewSource(1)))
			st := stateAtRound(t, alphonso(), 400000, lastOffer, tc.round)

			status, counter, msg := b.RespondToSellerOffer(context.Background(), st, sellerPrice, "steep")
			if status != negotiation.StatusOngoing {
				t.Fatalf("status = %s, want ongoing", status)
			}
			if want := lastOffer + int(float64(sellerPrice)*tc.share); counter != want {
				t.Fatalf("round %d counter = %d, want %d", tc.round, counter, want)
			}
			if msg == "" {
				t.Fatalf("empty message")
			}
		})
	}
}

func TestDiplomatCounterStopsBelowSellerPrice(t *testing.T) {
	b := NewDiplomatBuyer(rand.New(rand.NewSource(1)))
	st := stateAtRound(t, alphonso(), 400000, 117000, 4)

	_, counter, _ := b.RespondToSellerOffer(context.Background(), st, 118000, "almost there")
	if counter != 117999 {
		t.Fatalf("counter = %d, must stay one rupee under the ask", counter)
	}
}

func TestDiplomatCounterRespectsBudget(t *testing.T) {
	b := NewDiplomatBuyer(rand.New(rand.NewSource(1)))
	st := stateAtRound(t, alphonso(), 120000, 117000, 4)

	_, counter, _ := b.RespondToSellerOffer(context.Background(), st, 250000, "steep")
	if counter != 120000 {
		t.Fatalf("counter = %d, must clamp to budget", counter)
	}
}

func TestDiplomatMirrorsSellerPhrases(t *testing.T) {
	b := NewDiplomatBuyer(rand.New(rand.NewSource(7)))
	st := stateAtRound(t, alphonso(), 400000, 117000, 2)

	_, counter, msg := b.RespondToSellerOffer(
		context.Background(), st, 250000,
		"A fair offer for premium quality, this is the best price on the market.",
	)
	wantPrefix := "I understand your focus on quality, market, best price, fair, offer. "
	if !strings.HasPrefix(msg, wantPrefix) {
		t.Fatalf("message %q should echo the seller's phrases", msg)
	}
	if !strings.Contains(msg, "₹"+strconv.Itoa(counter)) {
		t.Fatalf("message %q should quote the counter %d", msg, counter)
	}

	_, _, plain := b.RespondToSellerOffer(context.Background(), st, 250000, "hello")
	if strings.HasPrefix(plain, "I understand your focus on") {
		t.Fatalf("nothing to mirror, got %q", plain)
	}
}

func TestDiplomatAppliesTimePressure(t *testing.T) {
	b := NewDiplomatBuyer(rand.New(rand.NewSource(1)))

	late := stateAtRound(t, alphonso(), 400000, 117000, 8)
	_, _, msg := b.RespondToSellerOffer(context.Background(), late, 250000, "steep")
	if !strings.HasSuffix(msg, "Let us not lose time over what already feels inevitable.") {
		t.Fatalf("late round message lacks time pressure: %q", msg)
	}

	early := stateAtRound(t, alphonso(), 400000, 117000, 3)
	_, _, msg = b.RespondToSellerOffer(context.Background(), early, 250000, "steep")
	if strings.HasSuffix(msg, "inevitable.") {
		t.Fatalf("early round message should not carry pressure: %q", msg)
	}
}
