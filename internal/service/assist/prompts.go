package assist

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed prompts/prompts.yaml
var promptsFS embed.FS

// PromptTemplate pairs a system prompt with a user message template.
type PromptTemplate struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

// PromptRegistry holds the prompt templates for every assist operation.
// Templates live in an embedded YAML file so wording can be tuned
// without touching code.
type PromptRegistry struct {
	Outline PromptTemplate `yaml:"outline"`
	Quiz    PromptTemplate `yaml:"quiz"`
}

// LoadPrompts parses the embedded prompt definitions.
func LoadPrompts() (*PromptRegistry, error) {
	data, err := promptsFS.ReadFile("prompts/prompts.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded prompts: %w", err)
	}

	var registry PromptRegistry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse prompts: %w", err)
	}

	if registry.Outline.User == "" || registry.Quiz.User == "" {
		return nil, fmt.Errorf("prompt registry is incomplete")
	}

	return &registry, nil
}
