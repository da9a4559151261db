package negotiation

const (
	SpeakerBuyer  = "buyer"
	SpeakerSeller = "seller"
)

// Message is one transcript entry, tagged by the side that produced it.
type Message struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// State is the mutable record of one in-progress negotiation. The engine
// drives all mutation through the append methods; strategies read the state
// through accessors that return copies. History only grows: appends never
// rewrite or drop earlier entries, and an offer becomes visible to the other
// side only once the engine has appended it.
type State struct {
	product      Product
	buyerBudget  int
	currentRound int
	sellerOffers []int
	buyerOffers  []int
	transcript   []Message
}

func NewState(product Product, buyerBudget int) *State {
	return &State{
		product:     product,
		buyerBudget: buyerBudget,
	}
}

func (s *State) Product() Product { return s.product }

// BuyerBudget is the hard ceiling: no offer or accepted price may exceed it.
func (s *State) BuyerBudget() int { return s.buyerBudget }

// CurrentRound is 0 before the loop starts, then always within [1, maxRounds].
func (s *State) CurrentRound() int { return s.currentRound }

// SellerOffers returns the seller's price history, oldest first.
func (s *State) SellerOffers() []int {
	out := make([]int, len(s.sellerOffers))
	copy(out, s.sellerOffers)
	return out
}

// BuyerOffers returns the buyer's price history, oldest first.
func (s *State) BuyerOffers() []int {
	out := make([]int, len(s.buyerOffers))
	copy(out, s.buyerOffers)
	return out
}

// Transcript returns every exchanged message in order.
func (s *State) Transcript() []Message {
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func (s *State) LastSellerOffer() (int, bool) {
	if len(s.sellerOffers) == 0 {
		return 0, false
	}
	return s.sellerOffers[len(s.sellerOffers)-1], true
}

func (s *State) LastBuyerOffer() (int, bool) {
	if len(s.buyerOffers) == 0 {
		return 0, false
	}
	return s.buyerOffers[len(s.buyerOffers)-1], true
}

func (s *State) SetRound(round int) { s.currentRound = round }

func (s *State) AppendSellerOffer(price int, message string) {
	s.sellerOffers = append(s.sellerOffers, price)
	s.transcript = append(s.transcript, Message{Speaker: SpeakerSeller, Text: message})
}

func (s *State) AppendBuyerOffer(price int, message string) {
	s.buyerOffers = append(s.buyerOffers, price)
	s.transcript = append(s.transcript, Message{Speaker: SpeakerBuyer, Text: message})
}

// AppendSellerMessage records a seller line that carries no new price, such as
// the closing message when the seller accepts.
func (s *State) AppendSellerMessage(message string) {
	s.transcript = append(s.transcript, Message{Speaker: SpeakerSeller, Text: message})
}
