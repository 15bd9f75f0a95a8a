package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"mazao/config"
	"mazao/internal/domain/entity"
	domainerrors "mazao/internal/domain/errors"
	"mazao/internal/domain/repository"
	"mazao/internal/domain/service"
	"mazao/internal/errors"
	"mazao/internal/usecase"
)

const excerptLength = 200

type generationService struct {
	settingRepo repository.SettingRepository
	generator   service.TextGenerator
	cfg         *config.Config
	logger      *slog.Logger
}

// NewGenerationService creates a new AI drafting service instance
func NewGenerationService(
	settingRepo repository.SettingRepository,
	generator service.TextGenerator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.GenerationUsecase {
	return &generationService{
		settingRepo: settingRepo,
		generator:   generator,
		cfg:         cfg,
		logger:      logger,
	}
}

// resolveAPIKey prefers the persisted setting over the environment default.
func (s *generationService) resolveAPIKey(ctx context.Context) (string, error) {
	setting, err := s.settingRepo.Find(ctx, entity.SettingOpenAIKey)
	if err == nil && strings.TrimSpace(setting.Value) != "" {
		return setting.Value, nil
	}
	if err != nil && !errors.Is(err, repository.ErrSettingNotFound) {
		return "", errors.Wrap(err, "failed to read API key setting")
	}

	if strings.TrimSpace(s.cfg.OpenAI.APIKey) != "" {
		return s.cfg.OpenAI.APIKey, nil
	}

	return "", domainerrors.ErrAINotConfigured
}

func buildPrompt(topic, contentType string) string {
	if contentType == "announcement" {
		return fmt.Sprintf(
			"Write a short product announcement for an agricultural point-of-sale software company. "+
				"Topic: %s. Start with a single-line title, then one or two short paragraphs. "+
				"Keep it under 150 words and write in a clear, friendly tone.",
			topic,
		)
	}

	return fmt.Sprintf(
		"Write a blog post for the website of an agricultural point-of-sale software company. "+
			"Topic: %s. Start with a single-line title, then an engaging introduction, "+
			"three to four sections with subheadings, and a short conclusion. "+
			"Use markdown formatting and write for shop owners who are not technical.",
		topic,
	)
}

// extractTitle takes the first non-blank completion line, stripped of
// leading markdown heading markers.
func extractTitle(completion string) string {
	for _, line := range strings.Split(completion, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		return strings.TrimSpace(strings.TrimLeft(line, "#"))
	}

	return ""
}

// makeExcerpt truncates the body to its first characters with markdown
// emphasis stripped, suffixed with an ellipsis.
func makeExcerpt(body string) string {
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case '#', '*', '_', '`':
			return -1
		}

		return r
	}, body)
	stripped = strings.TrimSpace(stripped)

	runes := []rune(stripped)
	if len(runes) > excerptLength {
		runes = runes[:excerptLength]
	}

	return string(runes) + "..."
}

func (s *generationService) GenerateDraft(ctx context.Context, topic, contentType string) (*entity.Draft, error) {
	apiKey, err := s.resolveAPIKey(ctx)
	if err != nil {
		return nil, err
	}

	completion, err := s.generator.Complete(ctx, apiKey, buildPrompt(topic, contentType))
	if err != nil {
		s.logger.ErrorContext(ctx, "content generation failed",
			slog.String("topic", topic),
			slog.String("contentType", contentType),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrGenerationFailed
	}

	return &entity.Draft{
		Title:   extractTitle(completion),
		Body:    completion,
		Excerpt: makeExcerpt(completion),
	}, nil
}
