package negotiation

import "testing"

func TestStateAppendAndSnapshots(t *testing.T) {
	st := NewState(Product{Name: "Alphonso Mangoes", BaseMarketPrice: 180000, Quantity: 100}, 216000)

	if st.CurrentRound() != 0 {
		t.Fatalf("fresh state round = %d, want 0", st.CurrentRound())
	}
	if _, ok := st.LastSellerOffer(); ok {
		t.Fatalf("fresh state should have no seller offer")
	}
	if _, ok := st.LastBuyerOffer(); ok {
		t.Fatalf("fresh state should have no buyer offer")
	}

	st.AppendSellerOffer(270000, "opening")
	st.SetRound(1)
	st.AppendBuyerOffer(117000, "anchor")
	st.AppendSellerOffer(250000, "counter")

	if got := st.SellerOffers(); len(got) != 2 || got[0] != 270000 || got[1] != 250000 {
		t.Fatalf("unexpected seller offers: %v", got)
	}
	if got := st.BuyerOffers(); len(got) != 1 || got[0] != 117000 {
		t.Fatalf("unexpected buyer offers: %v", got)
	}
	if last, ok := st.LastSellerOffer(); !ok || last != 250000 {
		t.Fatalf("last seller offer = %d, %v", last, ok)
	}
	if last, ok := st.LastBuyerOffer(); !ok || last != 117000 {
		t.Fatalf("last buyer offer = %d, %v", last, ok)
	}

	tr := st.Transcript()
	if len(tr) != 3 {
		t.Fatalf("transcript length = %d, want 3", len(tr))
	}
	if tr[0].Speaker != SpeakerSeller || tr[1].Speaker != SpeakerBuyer || tr[2].Speaker != SpeakerSeller {
		t.Fatalf("transcript speaker order wrong: %+v", tr)
	}

	st.AppendSellerMessage("deal closed")
	if tr2 := st.Transcript(); len(tr2) != 4 || tr2[3].Text != "deal closed" {
		t.Fatalf("closing message not recorded: %+v", tr2)
	}
	if got := st.SellerOffers(); len(got) != 2 {
		t.Fatalf("closing message must not add a price, got %v", got)
	}
}

func TestStateSnapshotsAreCopies(t *testing.T) {
	st := NewState(Product{BaseMarketPrice: 100000, Quantity: 10}, 120000)
	st.AppendSellerOffer(150000, "opening")
	st.SetRound(1)
	st.AppendBuyerOffer(65000, "anchor")

	offers := st.SellerOffers()
	offers[0] = 1
	if got := st.SellerOffers(); got[0] != 150000 {
		t.Fatalf("internal seller offers mutated via returned slice: %v", got)
	}

	tr := st.Transcript()
	tr[0] = Message{Speaker: SpeakerBuyer, Text: "mutated"}
	if got := st.Transcript(); got[0].Text != "opening" {
		t.Fatalf("internal transcript mutated via returned slice: %+v", got)
	}
}
