package analytics

import (
	"encoding/json"
	"fmt"
	"sort"

	"ai-negotiator/internal/storage"
)

// SweepStats содержит сводку по серии переговорных сессий
type SweepStats struct {
	Sessions          int                   `json:"sessions"`
	Deals             int                   `json:"deals"`
	SuccessRatePct    float64               `json:"success_rate_pct"`
	TotalSavings      int                   `json:"total_savings"`
	AvgRounds         float64               `json:"avg_rounds"`
	AvgBelowMarketPct float64               `json:"avg_below_market_pct"`
	DealsByScenario   map[string]int        `json:"deals_by_scenario"`
	ByBuyer           map[string]BuyerStats `json:"by_buyer"`
}

// BuyerStats содержит статистику по одной стратегии покупателя
type BuyerStats struct {
	Buyer    string `json:"buyer"`
	Sessions int    `json:"sessions"`
	Deals    int    `json:"deals"`
	Savings  int    `json:"savings"`
}

// AnalyzeSweep агрегирует записи сессий: доля сделок, экономия и разбивка
// по стратегиям. Средний дисконт к рынку считается только по сделкам.
func AnalyzeSweep(records []storage.Record) *SweepStats {
	stats := &SweepStats{
		DealsByScenario: make(map[string]int),
		ByBuyer:         make(map[string]BuyerStats),
	}

	roundsTotal := 0
	belowMarketTotal := 0.0
	for _, rec := range records {
		stats.Sessions++
		roundsTotal += rec.Result.Rounds

		buyerStat, exists := stats.ByBuyer[rec.Buyer]
		if !exists {
			buyerStat = BuyerStats{Buyer: rec.Buyer}
		}
		buyerStat.Sessions++

		if rec.Result.DealMade {
			stats.Deals++
			stats.TotalSavings += rec.Result.Savings
			belowMarketTotal += rec.Result.BelowMarketPct
			stats.DealsByScenario[rec.Scenario]++
			buyerStat.Deals++
			buyerStat.Savings += rec.Result.Savings
		}

		stats.ByBuyer[rec.Buyer] = buyerStat
	}

	if stats.Sessions > 0 {
		stats.SuccessRatePct = float64(stats.Deals) / float64(stats.Sessions) * 100
		stats.AvgRounds = float64(roundsTotal) / float64(stats.Sessions)
	}
	if stats.Deals > 0 {
		stats.AvgBelowMarketPct = belowMarketTotal / float64(stats.Deals)
	}
	return stats
}

// GenerateReportSummary создает текстовое резюме свипа для логов
func (ss *SweepStats) GenerateReportSummary() string {
	summary := fmt.Sprintf(`Negotiation sweep summary:

Deals completed: %d/%d
Success rate: %.1f%%
Total savings: ₹%d
Average rounds: %.1f
Average below market: %.1f%%

`, ss.Deals, ss.Sessions, ss.SuccessRatePct, ss.TotalSavings, ss.AvgRounds, ss.AvgBelowMarketPct)

	if len(ss.DealsByScenario) > 0 {
		summary += "Deals by scenario:\n"
		for _, scenario := range sortedKeys(ss.DealsByScenario) {
			summary += fmt.Sprintf("- %s: %d\n", scenario, ss.DealsByScenario[scenario])
		}
		summary += "\n"
	}

	summary += fmt.Sprintf("Buyer strategies (%d):\n", len(ss.ByBuyer))
	for _, buyer := range sortedKeys(ss.ByBuyer) {
		bs := ss.ByBuyer[buyer]
		summary += fmt.Sprintf("- %s: %d/%d deals", bs.Buyer, bs.Deals, bs.Sessions)
		if bs.Savings > 0 {
			summary += fmt.Sprintf(", ₹%d saved", bs.Savings)
		}
		summary += "\n"
	}

	return summary
}

// ToJSON сериализует сводку в JSON для детального анализа
func (ss *SweepStats) ToJSON() (string, error) {
	data, err := json.MarshalIndent(ss, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
