package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"ai-negotiator/internal/agents"
	"ai-negotiator/internal/analytics"
	"ai-negotiator/internal/config"
	"ai-negotiator/internal/llm"
	"ai-negotiator/internal/negotiation"
	"ai-negotiator/internal/scheduler"
	"ai-negotiator/internal/storage"
)

// difficulty scales the buyer budget and the seller floor off the market
// price of whatever product it is paired with.
type difficulty struct {
	label       string
	budgetShare float64
	floorShare  float64
}

// scenario is one sweep cell: a product negotiated at a difficulty level.
type scenario struct {
	label       string
	product     negotiation.Product
	buyerBudget int
	sellerMin   int
}

var difficulties = []difficulty{
	{label: "easy", budgetShare: 1.2, floorShare: 0.80},
	{label: "medium", budgetShare: 1.0, floorShare: 0.85},
	{label: "hard", budgetShare: 0.9, floorShare: 0.82},
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	log.Printf("🚀 Starting negotiation sweep")

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("🎲 Random seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	ctx := context.Background()

	buyer, err := agents.NewBuyer(cfg.BuyerPersonality, newLLMClient(ctx, cfg), rng)
	if err != nil {
		log.Fatalf("❌ failed to create buyer: %v", err)
	}

	var rec storage.Recorder
	if cfg.SessionLogPath != "" {
		fr, err := storage.NewFileRecorder(cfg.SessionLogPath)
		if err != nil {
			log.Printf("⚠️ failed to init session recorder: %v", err)
		} else {
			rec = fr
		}
	}

	sweep := func(ctx context.Context) error {
		return runSweep(ctx, cfg.MaxRounds, buyer, rec)
	}

	if cfg.BenchmarkCron == "" {
		if err := sweep(ctx); err != nil {
			log.Fatalf("❌ Sweep failed: %v", err)
		}
		return
	}

	// Recurring mode: one sweep right away, then on the configured schedule
	// until interrupted.
	if err := sweep(ctx); err != nil {
		log.Printf("❌ Sweep failed: %v", err)
	}

	sched := scheduler.New(cfg.BenchmarkCron)
	sched.SetSweepFunction(sweep)
	if err := sched.Start(); err != nil {
		log.Fatalf("❌ failed to start scheduler: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	sched.Stop()
}

// newLLMClient builds the configured text-generation client. Only the
// assertive buyer consults it, and that buyer degrades to canned replies on
// any failure, so missing credentials are a warning rather than a fatal.
func newLLMClient(ctx context.Context, cfg *config.Config) llm.Client {
	if cfg.OpenAIAPIKey == "" && cfg.YandexOAuthToken == "" && cfg.GeminiAPIKey == "" {
		log.Printf("⚠️ No LLM credentials configured, running fully deterministic")
		return nil
	}

	client, err := llm.NewFactory(cfg).CreateClient(ctx, string(cfg.LLMProvider), cfg.OpenAIModel)
	if err != nil {
		log.Printf("⚠️ failed to create llm client: %v, running fully deterministic", err)
		return nil
	}

	log.Printf("🤖 LLM provider ready: %s (%s)", cfg.LLMProvider, cfg.OpenAIModel)
	return client
}

// runSweep plays every catalog product at every difficulty level with a
// fresh session each time, records the outcomes and prints the report.
func runSweep(ctx context.Context, maxRounds int, buyer negotiation.BuyerAgent, rec storage.Recorder) error {
	scenarios := buildScenarios(catalog())

	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("NEGOTIATION SWEEP: %s buyer, %d scenarios, max %d rounds\n", buyer.Name(), len(scenarios), maxRounds)
	fmt.Println(strings.Repeat("=", 60))

	var records []storage.Record
	for _, sc := range scenarios {
		fmt.Printf("\nTest: %s - %s scenario\n", sc.product.Name, sc.label)
		fmt.Printf("Buyer budget: ₹%d | Market price: ₹%d\n", sc.buyerBudget, sc.product.BaseMarketPrice)

		state := negotiation.NewState(sc.product, sc.buyerBudget)
		engine := negotiation.NewEngine(buyer, agents.NewSeller(sc.sellerMin), maxRounds)

		result, err := engine.Run(ctx, state)
		if err != nil {
			return fmt.Errorf("scenario %s/%s: %w", sc.product.Name, sc.label, err)
		}

		if result.DealMade {
			fmt.Printf("✅ DEAL at ₹%d in %d rounds\n", result.FinalPrice, result.Rounds)
			fmt.Printf("   Savings: ₹%d (%.1f%%)\n", result.Savings, result.SavingsPct)
			fmt.Printf("   Below market: %.1f%%\n", result.BelowMarketPct)
		} else {
			fmt.Printf("❌ NO DEAL after %d rounds\n", result.Rounds)
		}

		record := storage.NewRecord(buyer.Name(), sc.label, sc.product, sc.buyerBudget, sc.sellerMin, result)
		records = append(records, record)

		if rec != nil {
			if err := rec.AppendSession(record); err != nil {
				log.Printf("⚠️ failed to record session %s: %v", record.ID, err)
			}
		}
	}

	stats := analytics.AnalyzeSweep(records)
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println(stats.GenerateReportSummary())
	fmt.Println(strings.Repeat("=", 60))

	return nil
}

// buildScenarios crosses the catalog with the difficulty grid.
func buildScenarios(products []negotiation.Product) []scenario {
	var scenarios []scenario
	for _, p := range products {
		for _, d := range difficulties {
			scenarios = append(scenarios, scenario{
				label:       d.label,
				product:     p,
				buyerBudget: int(float64(p.BaseMarketPrice) * d.budgetShare),
				sellerMin:   int(float64(p.BaseMarketPrice) * d.floorShare),
			})
		}
	}
	return scenarios
}

func catalog() []negotiation.Product {
	return []negotiation.Product{
		{
			Name:            "Alphonso Mangoes",
			Category:        "Mangoes",
			Quantity:        100,
			Grade:           negotiation.GradeA,
			Origin:          "Ratnagiri",
			BaseMarketPrice: 180000,
			Attributes:      map[string]any{"ripeness": "optimal", "export_grade": true},
		},
		{
			Name:            "Kesar Mangoes",
			Category:        "Mangoes",
			Quantity:        150,
			Grade:           negotiation.GradeB,
			Origin:          "Gujarat",
			BaseMarketPrice: 150000,
			Attributes:      map[string]any{"ripeness": "semi-ripe", "export_grade": false},
		},
	}
}
