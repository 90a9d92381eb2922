package assist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	llmprovider "github.com/haowjy/meridian-llm-go"

	"scribe/internal/domain"
	"scribe/internal/domain/repositories"
	"scribe/internal/domain/services"
)

const (
	maxTopicLength = 200

	defaultQuizCount = 5
	maxQuizCount     = 20

	// Note content handed to the model is capped so one oversized note
	// cannot blow the provider's context window.
	maxPromptContentLength = 20_000

	maxResponseTokens = 4096

	cacheTTL = 10 * time.Minute
)

type assistService struct {
	provider llmprovider.Provider
	model    string
	prompts  *PromptRegistry
	noteRepo repositories.NoteRepository
	cache    *responseCache
	logger   *slog.Logger
}

// NewAssistService creates a new assist service backed by the given
// LLM provider.
func NewAssistService(
	provider llmprovider.Provider,
	model string,
	prompts *PromptRegistry,
	noteRepo repositories.NoteRepository,
	logger *slog.Logger,
) services.AssistService {
	return &assistService{
		provider: provider,
		model:    model,
		prompts:  prompts,
		noteRepo: noteRepo,
		cache:    newResponseCache(cacheTTL),
		logger:   logger,
	}
}

// GenerateOutline produces a Markdown study outline for a topic
func (s *assistService) GenerateOutline(ctx context.Context, ownerID, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", &domain.ValidationError{
			Message: "validation failed",
			Fields:  map[string]string{"topic": "topic is required"},
		}
	}
	if len([]rune(topic)) > maxTopicLength {
		return "", &domain.ValidationError{
			Message: "validation failed",
			Fields:  map[string]string{"topic": fmt.Sprintf("must be at most %d characters", maxTopicLength)},
		}
	}

	cacheKey := fmt.Sprintf("outline:%s:%s", ownerID, topic)
	if cached, ok := s.cache.get(cacheKey); ok {
		return cached, nil
	}

	prompt := fmt.Sprintf(s.prompts.Outline.User, topic)
	outline, err := s.generate(ctx, s.prompts.Outline.System, prompt)
	if err != nil {
		return "", err
	}

	s.cache.set(cacheKey, outline)
	return outline, nil
}

// GenerateQuiz produces quiz questions from a note's content. The note
// lookup is owner scoped, so asking about someone else's note reports
// not found.
func (s *assistService) GenerateQuiz(ctx context.Context, ownerID, noteID string, count int) ([]services.QuizQuestion, error) {
	if count <= 0 {
		count = defaultQuizCount
	}
	if count > maxQuizCount {
		count = maxQuizCount
	}

	note, err := s.noteRepo.GetByID(ctx, noteID, ownerID)
	if err != nil {
		return nil, err
	}

	content := note.Title + "\n\n" + note.Content
	if len(content) > maxPromptContentLength {
		content = content[:maxPromptContentLength]
	}

	prompt := fmt.Sprintf(s.prompts.Quiz.User, count, content)
	text, err := s.generate(ctx, s.prompts.Quiz.System, prompt)
	if err != nil {
		return nil, err
	}

	questions := parseQuiz(text)
	if len(questions) == 0 {
		s.logger.Warn("quiz output had no parseable questions", "note_id", noteID, "model", s.model)
		return nil, fmt.Errorf("model returned no usable questions")
	}

	return questions, nil
}

// generate sends one user message to the provider and concatenates the
// text blocks of the response.
func (s *assistService) generate(ctx context.Context, system, prompt string) (string, error) {
	maxTokens := maxResponseTokens
	req := &llmprovider.GenerateRequest{
		Messages: []llmprovider.Message{
			{
				Role: "user",
				Blocks: []*llmprovider.Block{
					{
						BlockType:   "text",
						Sequence:    0,
						TextContent: &prompt,
					},
				},
			},
		},
		Model: s.model,
		Params: &llmprovider.RequestParams{
			MaxTokens: &maxTokens,
			System:    &system,
		},
	}

	resp, err := s.provider.GenerateResponse(ctx, req)
	if err != nil {
		s.logger.Error("provider generation failed", "model", s.model, "error", err)
		return "", fmt.Errorf("generation failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Blocks {
		if block.BlockType == "text" && block.TextContent != nil {
			sb.WriteString(*block.TextContent)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("provider returned an empty response")
	}
	return text, nil
}
