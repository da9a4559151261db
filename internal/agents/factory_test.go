package agents

import (
	"math/rand"
	"testing"
)

func TestNewBuyer(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	cases := []struct {
		personality string
		wantName    string
	}{
		{personality: PersonalityDiplomat, wantName: "diplomat"},
		{personality: PersonalityCautious, wantName: "cautious"},
		{personality: PersonalityAssertive, wantName: "assertive"},
	}
	for _, tc := range cases {
		buyer, err := NewBuyer(tc.personality, nil, rng)
		if err != nil {
			t.Fatalf("%s: %v", tc.personality, err)
		}
		if buyer.Name() != tc.wantName {
			t.Fatalf("name = %s, want %s", buyer.Name(), tc.wantName)
		}
	}

	if _, err := NewBuyer("haggler", nil, rng); err == nil {
		t.Fatalf("expected error for unknown personality")
	}
}
