package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/ecocart/assistcache/pkg/types"
)

// ChatClient is the minimal interface needed to call a chat model. It mirrors
// the CreateChatCompletion method so that any OpenAI-compatible backend can
// be adapted.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ErrNoBackend is returned when a query misses the cache and no chat backend
// is configured.
var ErrNoBackend = errors.New("assistant: no chat backend configured")

// ErrEmptyQuery is returned for blank queries.
var ErrEmptyQuery = errors.New("assistant: empty query")

// Config represents assistant service settings.
type Config struct {
	Model        string
	SystemPrompt string
	// CacheAnswers controls whether live answers are written back to the
	// cache for future offline hits.
	CacheAnswers bool
}

// Answer is the result of a single assistant request.
type Answer struct {
	RequestID  string  `json:"requestId"`
	Query      string  `json:"query"`
	Response   string  `json:"response"`
	FromCache  bool    `json:"fromCache"`
	Similarity float64 `json:"similarity,omitempty"`
	IsFAQ      bool    `json:"isFAQ,omitempty"`
	Model      string  `json:"model,omitempty"`
}

// Service answers user queries cache-first: a sufficiently similar cached
// response is served without any network call, and only a miss reaches the
// chat backend. The backend is optional; without one the service is a pure
// offline responder.
type Service struct {
	cache  types.Cache
	client ChatClient
	config Config
	logger zerolog.Logger
}

// NewService creates an assistant service. client may be nil for offline-only
// operation.
func NewService(cache types.Cache, client ChatClient, config Config, logger zerolog.Logger) *Service {
	if config.Model == "" {
		config.Model = "gpt-4o-mini"
	}
	return &Service{
		cache:  cache,
		client: client,
		config: config,
		logger: logger.With().Str("component", "assistant").Logger(),
	}
}

// NewOpenAIClient builds a ChatClient for an OpenAI-compatible endpoint.
// baseURL may be empty for the default endpoint.
func NewOpenAIClient(apiKey, baseURL string) ChatClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// Ask resolves a query, cache first, chat backend second.
func (s *Service) Ask(ctx context.Context, query string) (*Answer, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	requestID := uuid.NewString()
	logger := s.logger.With().Str("request_id", requestID).Logger()

	if match := s.cache.FindMatch(ctx, query); match != nil {
		logger.Debug().
			Float64("similarity", match.Similarity).
			Bool("is_faq", match.IsFAQ).
			Msg("serving cached answer")
		return &Answer{
			RequestID:  requestID,
			Query:      query,
			Response:   match.Response,
			FromCache:  true,
			Similarity: match.Similarity,
			IsFAQ:      match.IsFAQ,
		}, nil
	}

	if s.client == nil {
		logger.Debug().Msg("cache miss with no backend configured")
		return nil, ErrNoBackend
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: query},
	}
	if s.config.SystemPrompt != "" {
		messages = append([]openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.config.SystemPrompt},
		}, messages...)
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.config.Model,
		Messages: messages,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("chat backend request failed")
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("assistant: chat backend returned no choices")
	}
	response := resp.Choices[0].Message.Content

	if s.config.CacheAnswers {
		s.cache.SaveResponse(ctx, query, response, nil)
	}

	logger.Debug().Str("model", s.config.Model).Msg("serving live answer")
	return &Answer{
		RequestID: requestID,
		Query:     query,
		Response:  response,
		Model:     s.config.Model,
	}, nil
}

// AskFAQ resolves a query against the curated FAQ corpus only.
func (s *Service) AskFAQ(ctx context.Context, query string) (*types.FAQItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	return s.cache.FindFAQMatch(ctx, query), nil
}
