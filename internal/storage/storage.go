package storage

import (
	"time"

	"github.com/oklog/ulid/v2"

	"ai-negotiator/internal/negotiation"
)

// Record is one finished negotiation session as written to the session log.
// It is intentionally flat to allow future DB implementations.
// Records are expected to be appended in chronological order.
type Record struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Buyer     string             `json:"buyer"`
	Scenario  string             `json:"scenario"`
	Product   string             `json:"product"`
	Budget    int                `json:"budget"`
	SellerMin int                `json:"seller_min"`
	Result    negotiation.Result `json:"result"`
}

// NewRecord stamps a session result with a lexically sortable id and the
// current time.
func NewRecord(buyer, scenario string, product negotiation.Product, budget, sellerMin int, result negotiation.Result) Record {
	return Record{
		ID:        ulid.Make().String(),
		Timestamp: time.Now().UTC(),
		Buyer:     buyer,
		Scenario:  scenario,
		Product:   product.Name,
		Budget:    budget,
		SellerMin: sellerMin,
		Result:    result,
	}
}

// Recorder abstracts persistence of session records.
// Implementations can be file-based, database, etc.
// LoadSessions should return records in chronological order.
// AppendSession should atomically append a new record.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendSession(rec Record) error
	LoadSessions() ([]Record, error)
}
