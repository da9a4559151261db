package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
	ProviderGemini LLMProvider = "gemini"
)

type Config struct {
	// LLM settings. The negotiation core never needs these: without a key
	// the agents run on their deterministic fallbacks.
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	GeminiAPIKey     string      `env:"GEMINI_API_KEY"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// Negotiation settings
	MaxRounds        int    `env:"MAX_ROUNDS" envDefault:"10"`
	BuyerPersonality string `env:"BUYER_PERSONALITY" envDefault:"diplomat"`
	RandomSeed       int64  `env:"RANDOM_SEED"`

	// Storage
	SessionLogPath string `env:"SESSION_LOG_PATH" envDefault:"logs/sessions.jsonl"`

	// Scheduling: cron expression for recurring sweeps; empty runs once.
	BenchmarkCron string `env:"BENCHMARK_CRON"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
