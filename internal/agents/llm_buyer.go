package agents

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"ai-negotiator/internal/llm"
	"ai-negotiator/internal/negotiation"
)

const (
	llmOpeningShare    = 0.80
	llmCounterShare    = 0.90
	llmLateAcceptRound = 8
	llmFinalRound      = 10
)

var (
	offerAmountRe  = regexp.MustCompile(`offer_amount:\s*(\d+)`)
	counterOfferRe = regexp.MustCompile(`counter_offer:\s*(\d+)`)
	messageRe      = regexp.MustCompile(`(?s)message:\s*(.+)`)
)

// llmPersonality задаёт характер генерируемых реплик: давление, ссылки на
// инсайдерское знание рынка и дефицит времени.
const llmPersonality = `I am an assertive negotiator. I use market logic and pressure to dominate negotiations.
I mix authority and insider knowledge with threats of walking away.
I reference other suppliers and market insiders, and I apply time pressure in late rounds.
Catchphrases include 'Market insiders are closing deals at lower rates.',
'I have other suppliers lined up.', and
'We're running out of time - this is my final serious offer.'`

// LLMBuyer формулирует реплики через LLM, но все ценовые решения принимает
// локально: порог принятия зависит только от раунда и рынка, а не от вывода
// модели. Без клиента (nil) агент работает на детерминированных запасных
// ходах, поэтому сбой генерации никогда не решает исход торга.
type LLMBuyer struct {
	client llm.Client
}

func NewLLMBuyer(client llm.Client) *LLMBuyer {
	return &LLMBuyer{client: client}
}

func (b *LLMBuyer) Name() string { return "assertive" }

func (b *LLMBuyer) GenerateOpeningOffer(ctx context.Context, state *negotiation.State) (int, string) {
	market := state.Product().BaseMarketPrice
	offer := int(float64(market) * llmOpeningShare)
	msg := "Let's begin."

	if text, ok := b.generate(ctx, b.openingPrompt(state)); ok {
		if v, found := parseAmount(offerAmountRe, text); found {
			offer = v
		}
		if m, found := parseMessage(text); found {
			msg = m
		}
	}

	if offer > state.BuyerBudget() {
		offer = state.BuyerBudget()
	}
	return offer, msg
}

func (b *LLMBuyer) RespondToSellerOffer(ctx context.Context, state *negotiation.State, sellerPrice int, sellerMessage string) (negotiation.DealStatus, int, string) {
	budget := state.BuyerBudget()
	market := state.Product().BaseMarketPrice
	round := state.CurrentRound()

	// Принятие решается до обращения к модели: строгий порог в ранних
	// раундах, рыночная цена — в поздних.
	if sellerPrice <= budget {
		early := round < llmLateAcceptRound && float64(sellerPrice) <= float64(market)*0.9
		late := round >= llmLateAcceptRound && sellerPrice <= market
		if early || late {
			return negotiation.StatusAccepted, sellerPrice, fmt.Sprintf("Deal accepted at ₹%d. You're lucky I'm closing now.", sellerPrice)
		}
	}

	counter := int(float64(market) * llmCounterShare)
	msg := "I'll consider my next move."
	if text, ok := b.generate(ctx, b.counterPrompt(state, sellerPrice, sellerMessage)); ok {
		if v, found := parseAmount(counterOfferRe, text); found {
			counter = v
		}
		if m, found := parseMessage(text); found {
			msg = m
		}
	}
	if counter > budget {
		counter = budget
	}

	// Последний раунд: берём всё, что укладывается в бюджет, чтобы не
	// уйти в таймаут.
	if round >= llmFinalRound && sellerPrice <= budget {
		return negotiation.StatusAccepted, sellerPrice, fmt.Sprintf("Fine, I'll take ₹%d. Let's close this now.", sellerPrice)
	}

	return negotiation.StatusOngoing, counter, msg
}

func (b *LLMBuyer) generate(ctx context.Context, messages []llm.Message) (string, bool) {
	if b.client == nil {
		return "", false
	}
	resp, err := b.client.Generate(ctx, messages)
	if err != nil {
		log.Printf("⚠️ message generation failed, falling back to canned reply: %v", err)
		return "", false
	}
	if resp.TotalTokens > 0 {
		log.Printf("📊 %s used %d tokens (%d prompt, %d completion)", resp.Model, resp.TotalTokens, resp.PromptTokens, resp.CompletionTokens)
	}
	return resp.Content, true
}

func (b *LLMBuyer) openingPrompt(state *negotiation.State) []llm.Message {
	p := state.Product()
	user := fmt.Sprintf(`You are negotiating for %s, market price ₹%d, quantity %d, quality %s.

Generate an opening offer that is assertive yet within budget ₹%d.
Tactics you may use: anchoring, invoking insider market knowledge, and time pressure.

Return only:
offer_amount: <number>
message: <2-3 sentence message in character>`,
		p.Name, p.BaseMarketPrice, p.Quantity, p.Grade, state.BuyerBudget())
	return []llm.Message{
		{Role: "system", Content: llmPersonality},
		{Role: "user", Content: user},
	}
}

func (b *LLMBuyer) counterPrompt(state *negotiation.State, sellerPrice int, sellerMessage string) []llm.Message {
	p := state.Product()
	user := fmt.Sprintf(`You are negotiating for %s, market price ₹%d, quantity %d, quality %s.
Current round: %d
Seller offered ₹%d with message: "%s"
Previous buyer offers: %v

Respond strategically:
- Question the seller's pricing logic
- Reference other suppliers or insider knowledge
- Apply time pressure if late rounds

Return only:
counter_offer: <number>
message: <your response in character>`,
		p.Name, p.BaseMarketPrice, p.Quantity, p.Grade,
		state.CurrentRound(), sellerPrice, sellerMessage, state.BuyerOffers())
	return []llm.Message{
		{Role: "system", Content: llmPersonality},
		{Role: "user", Content: user},
	}
}

func parseAmount(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseMessage(text string) (string, bool) {
	m := messageRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
