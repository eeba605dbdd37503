package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"moviweb-backend/internal/config"
	"moviweb-backend/internal/models"

	"github.com/sirupsen/logrus"
	openai "github.com/sashabaranov/go-openai"
)

const (
	systemPrompt = "You are an assistant inside a movie web app. " +
		"You only talk about real movies. You answer briefly and clearly."

	// Shown instead of failing the page when the generation API is down.
	triviaFallback = "No trivia available right now."
	reviewFallback = "No review available right now."
)

// AIService wraps the OpenAI chat-completions API. Every method degrades to a
// placeholder value on API failure so rendering never depends on the service
// being up.
type AIService interface {
	GenerateTrivia(ctx context.Context, title, director string, year int) string
	GenerateReview(ctx context.Context, title string) string
	GenerateRecommendations(ctx context.Context, title string, count int) []models.Recommendation
}

type aiService struct {
	client *openai.Client
	model  string
	logger *logrus.Logger
}

func NewAIService(cfg config.OpenAIConfig, logger *logrus.Logger) AIService {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	return &aiService{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
		logger: logger,
	}
}

func (s *aiService) GenerateTrivia(ctx context.Context, title, director string, year int) string {
	prompt := fmt.Sprintf(
		"Share one short, interesting piece of trivia about the movie '%s'", title)
	if director != "" {
		prompt += fmt.Sprintf(" directed by %s", director)
	}
	if year > 0 {
		prompt += fmt.Sprintf(" (%d)", year)
	}
	prompt += ". Answer in at most two sentences."

	content, err := s.complete(ctx, prompt)
	if err != nil {
		s.logger.WithError(err).WithField("title", title).Warn("Trivia generation failed, using fallback")
		return triviaFallback
	}
	return content
}

func (s *aiService) GenerateReview(ctx context.Context, title string) string {
	prompt := fmt.Sprintf(
		"Write a short review (2-3 sentences) of the movie '%s'. "+
			"Mention what makes it worth watching or not.", title)

	content, err := s.complete(ctx, prompt)
	if err != nil {
		s.logger.WithError(err).WithField("title", title).Warn("Review generation failed, using fallback")
		return reviewFallback
	}
	return content
}

func (s *aiService) GenerateRecommendations(ctx context.Context, title string, count int) []models.Recommendation {
	if count < 1 {
		count = 5
	}
	if count > 10 {
		count = 10
	}

	prompt := fmt.Sprintf(
		"The user likes the movie '%s'. Suggest %d other movies they might enjoy. "+
			"Return them as a numbered list in this exact format:\n"+
			"1. Movie Title - short reason\n"+
			"2. Movie Title - short reason\n"+
			"...", title, count)

	content, err := s.complete(ctx, prompt)
	if err != nil {
		s.logger.WithError(err).WithField("title", title).Warn("Recommendation generation failed, using fallback")
		return []models.Recommendation{}
	}

	recommendations := parseRecommendations(content)
	if len(recommendations) == 0 {
		s.logger.WithField("title", title).Warn("No recommendations parsed from model output")
	}
	return recommendations
}

func (s *aiService) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.8,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("chat completion returned empty content")
	}
	return content, nil
}

// parseRecommendations turns a numbered "Title - reason" list into structs.
// Lines that don't match the format fall back to title-only entries.
func parseRecommendations(content string) []models.Recommendation {
	var recommendations []models.Recommendation

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Strip a leading "1.", "2.", ... marker.
		if idx := strings.Index(line, "."); idx > 0 && isDigits(line[:idx]) {
			line = strings.TrimSpace(line[idx+1:])
		}
		if line == "" {
			continue
		}

		if title, reason, found := strings.Cut(line, " - "); found {
			recommendations = append(recommendations, models.Recommendation{
				Title:  strings.TrimSpace(title),
				Reason: strings.TrimSpace(reason),
			})
		} else {
			recommendations = append(recommendations, models.Recommendation{Title: line})
		}
	}

	return recommendations
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
