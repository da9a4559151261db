package agents

import (
	"fmt"
	"math/rand"

	"ai-negotiator/internal/llm"
	"ai-negotiator/internal/negotiation"
)

const (
	PersonalityDiplomat  = "diplomat"
	PersonalityCautious  = "cautious"
	PersonalityAssertive = "assertive"
)

// NewBuyer подбирает стратегию покупателя по имени персоналии. client нужен
// только ассертивному агенту, остальные его игнорируют.
func NewBuyer(personality string, client llm.Client, rng *rand.Rand) (negotiation.BuyerAgent, error) {
	switch personality {
	case PersonalityDiplomat:
		return NewDiplomatBuyer(rng), nil
	case PersonalityCautious:
		return NewCautiousBuyer(), nil
	case PersonalityAssertive:
		return NewLLMBuyer(client), nil
	default:
		return nil, fmt.Errorf("unknown buyer personality: %s", personality)
	}
}
