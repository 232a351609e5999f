package gift

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"wishgallery/internal/lang"
	"wishgallery/internal/logging"
)

// DefaultModel is used when Config.Model is empty.
const DefaultModel = "gemini-2.5-flash"

// ErrOffline is the generation error of a client built without an API key.
var ErrOffline = errors.New("no API key configured")

// Config configures the Gemini connection.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional endpoint override
}

// contentGenerator is the slice of genai.Models the client needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client turns wishes into gifts. Generate never fails: every error is
// logged and replaced by the fallback list.
type Client struct {
	models contentGenerator // nil when offline
	model  string
}

// NewClient creates a Gemini-backed client. Without an API key the client is
// offline and always answers with the fallback list.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	if cfg.APIKey == "" {
		logging.Get(logging.CategoryGift).Warnw("no API key configured, gifts will come from the fallback list")
		return &Client{model: model}, nil
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return newClient(client.Models, model), nil
}

func newClient(models contentGenerator, model string) *Client {
	return &Client{models: models, model: model}
}

// Model returns the model name used for generation.
func (c *Client) Model() string {
	return c.model
}

// Generate returns exactly Count gifts for wish. The model answers in the
// wish's language, using preference only when it cannot tell; on any failure
// the fixed list for preference is returned instead.
func (c *Client) Generate(ctx context.Context, wish string, preference lang.Language) []Message {
	log := logging.Get(logging.CategoryGift)
	start := time.Now()

	msgs, err := c.generate(ctx, wish, preference)
	if err != nil {
		log.Warnw("gift generation failed, using fallback",
			"error", err,
			"model", c.model,
			"language", preference,
			"elapsed", time.Since(start),
		)
		return Fallback(preference)
	}

	log.Debugw("gifts generated", "model", c.model, "elapsed", time.Since(start))
	return msgs
}

func (c *Client) generate(ctx context.Context, wish string, preference lang.Language) ([]Message, error) {
	if c.models == nil {
		return nil, ErrOffline
	}

	resp, err := c.models.GenerateContent(ctx, c.model,
		genai.Text(BuildPrompt(wish, preference)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   ResponseSchema(),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("GenAI generate failed: %w", err)
	}
	if resp == nil {
		return nil, ErrEmptyResponse
	}

	return ParseMessages(resp.Text())
}
