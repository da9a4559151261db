package agents

import (
	"context"
	"strings"
	"testing"
)

func TestSellerOpensAboveMarket(t *testing.T) {
	s := NewSeller(144000)
	price, msg := s.GetOpeningPrice(context.Background(), alphonso())
	if price != 270000 {
		t.Fatalf("opening = %d, want 150%% of market", price)
	}
	if !strings.Contains(msg, "A grade Alphonso Mangoes") || !strings.Contains(msg, "₹270000") {
		t.Fatalf("unexpected pitch: %q", msg)
	}
}

func TestSellerAcceptsProfitableOffer(t *testing.T) {
	s := NewSeller(144000)

	price, msg, accepted := s.RespondToBuyer(context.Background(), 160000, 2)
	if !accepted || price != 160000 {
		t.Fatalf("160000 clears the margin, got price=%d accepted=%v", price, accepted)
	}
	if !strings.Contains(msg, "deal") {
		t.Fatalf("unexpected message: %q", msg)
	}

	_, _, accepted = s.RespondToBuyer(context.Background(), 150000, 2)
	if accepted {
		t.Fatalf("150000 is under minimum plus margin, must counter")
	}
}

func TestSellerNeverCountersBelowMinimum(t *testing.T) {
	s := NewSeller(144000)
	counter, _, accepted := s.RespondToBuyer(context.Background(), 100000, 1)
	if accepted {
		t.Fatalf("unexpected acceptance")
	}
	if counter != 144000 {
		t.Fatalf("counter = %d, must hold the floor", counter)
	}
}

func TestSellerMarkupShrinksNearTimeout(t *testing.T) {
	// Floor 120000 keeps a 120000 offer under the acceptance margin, so the
	// seller counters in both rounds.
	s := NewSeller(120000)

	early, msg, _ := s.RespondToBuyer(context.Background(), 120000, 8)
	if want := int(float64(120000) * sellerEarlyMarkup); early != want {
		t.Fatalf("round 8 counter = %d, want %d", early, want)
	}
	if !strings.Contains(msg, "come down") {
		t.Fatalf("unexpected message: %q", msg)
	}

	late, msg, _ := s.RespondToBuyer(context.Background(), 120000, 9)
	if late != 126000 {
		t.Fatalf("round 9 counter = %d, want the tighter markup", late)
	}
	if !strings.Contains(msg, "Final offer") {
		t.Fatalf("unexpected message: %q", msg)
	}
}
