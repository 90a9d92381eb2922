package assist

import (
	"fmt"

	llmprovider "github.com/haowjy/meridian-llm-go"
	"github.com/haowjy/meridian-llm-go/providers/anthropic"
	"github.com/haowjy/meridian-llm-go/providers/lorem"

	"scribe/internal/config"
)

// NewProvider creates the configured LLM provider. The lorem provider
// generates placeholder text without an API key and exists so the rest
// of the stack can run locally.
func NewProvider(cfg *config.Config) (llmprovider.Provider, error) {
	switch cfg.AssistProvider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
		return anthropic.NewProvider(cfg.AnthropicAPIKey)
	case "lorem":
		return lorem.NewProvider(), nil
	default:
		return nil, fmt.Errorf("unknown assist provider: %q", cfg.AssistProvider)
	}
}
