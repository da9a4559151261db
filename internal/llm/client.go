package llm

import "context"

// Message is one chat turn sent to the provider. Role follows the OpenAI
// convention ("system", "user", "assistant"); providers that use different
// framing translate it themselves.
type Message struct {
	Role    string
	Content string
}

// Response carries the generated text plus whatever usage accounting the
// provider reports; zero token counts mean the provider sent none.
type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Client is the text-generation collaborator used to phrase negotiation
// messages. Callers own retries and fallbacks: a failed or unparsable
// generation must never decide a negotiation.
type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}
