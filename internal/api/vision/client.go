package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

// Client wraps the vision-capable chat completion API.
type Client struct {
	client  *openai.Client
	model   string
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// ClientOptions holds options for creating a new vision Client.
type ClientOptions struct {
	APIKey         string
	Model          string
	RequestsPerSec int
}

// NewClient creates a new vision client with client-side rate limiting.
func NewClient(opts ClientOptions) *Client {
	if opts.Model == "" {
		opts.Model = openai.GPT4o
	}
	if opts.RequestsPerSec == 0 {
		opts.RequestsPerSec = 2
	}

	return &Client{
		client:  openai.NewClient(opts.APIKey),
		model:   opts.Model,
		limiter: rate.NewLimiter(rate.Every(time.Second), opts.RequestsPerSec),
		logger:  log.With().Str("component", "vision_client").Logger(),
	}
}

// AnalyzeChart sends one chart image with the analysis prompt and returns the
// model's raw text. The call is a single request-response with no internal
// retry; any failure here is terminal for the request.
func (c *Client) AnalyzeChart(ctx context.Context, imageDataURL string, language string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	prompt := BuildPrompt(language)

	c.logger.Debug().Str("model", c.model).Str("language", language).Msg("Sending chart to vision model")

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: imageDataURL,
						},
					},
					{
						Type: openai.ChatMessagePartTypeText,
						Text: prompt,
					},
				},
			},
		},
	})
	if err != nil {
		c.logger.Error().Err(err).Msg("Vision API error")
		return "", fmt.Errorf("chart analysis request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		c.logger.Error().Msg("Vision API returned no choices")
		return "", fmt.Errorf("provider returned an empty response")
	}

	return resp.Choices[0].Message.Content, nil
}

// EncodeDataURL packs raw image bytes into a data URL the vision API accepts.
func EncodeDataURL(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}
