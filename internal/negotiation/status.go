package negotiation

// DealStatus is the outcome of a single buyer turn. StatusTimeout is assigned
// only by the engine when the round cap runs out, never by a strategy.
type DealStatus string

const (
	StatusOngoing  DealStatus = "ongoing"
	StatusAccepted DealStatus = "accepted"
	StatusRejected DealStatus = "rejected" // reserved for walk-away strategies
	StatusTimeout  DealStatus = "timeout"
)

// Phase tracks where the engine is inside the session state machine.
type Phase string

const (
	PhaseNotStarted     Phase = "not_started"
	PhaseAwaitingBuyer  Phase = "awaiting_buyer"
	PhaseAwaitingSeller Phase = "awaiting_seller"
	PhaseConcluded      Phase = "concluded"
)
