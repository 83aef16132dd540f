package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"stratagem/internal/domain/decision"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL        = "https://api.openai.com/v1"
	DefaultModel          = "gpt-4o-mini"
	DefaultMaxTokens      = 512
	DefaultMinInterval    = time.Second
	DefaultRequestTimeout = 30 * time.Second
)

type Config struct {
	BaseURL        string
	APIKey         string
	Model          string
	MaxTokens      int
	MinInterval    time.Duration
	RequestTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.MinInterval <= 0 {
		c.MinInterval = DefaultMinInterval
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	return c
}

// Client talks to an OpenAI-compatible chat-completions endpoint carrying
// the static tool catalog. It never retries within a decision cycle; the
// next cycle's gating re-evaluation is the only retry path.
type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger
	now  func() time.Time

	mu         sync.Mutex
	lastCallAt time.Time
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	cfg = cfg.withDefaults()
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.RequestTimeout},
		log:  log,
		now:  time.Now,
	}
}

func (c *Client) Model() string { return c.cfg.Model }

type chatTool struct {
	Type     string       `json:"type"`
	Function toolFunction `json:"function"`
}

type toolFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model      string        `json:"model"`
	Messages   []chatMessage `json:"messages"`
	Tools      []chatTool    `json:"tools"`
	ToolChoice string        `json:"tool_choice"`
	MaxTokens  int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			ToolCalls []struct {
				ID       string `json:"id"`
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

// RequestDecision issues at most one request. A nil decision means "defer to
// automation": rate-limit skip, transport or protocol failure, empty choices,
// or a plain-text answer without tool calls.
func (c *Client) RequestDecision(ctx context.Context, instructions, situation string) (*decision.Decision, error) {
	if !c.permitCall() {
		c.log.Debug("oracle call skipped by rate limit",
			zap.Duration("min_interval", c.cfg.MinInterval))
		return nil, nil
	}

	body, err := json.Marshal(c.buildRequest(instructions, situation))
	if err != nil {
		c.log.Error("oracle request marshal failed", zap.Error(err))
		return nil, nil
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.log.Error("oracle request build failed", zap.Error(err))
		return nil, nil
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("oracle transport failure", zap.Error(err))
		return nil, nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("oracle returned non-success status", zap.Int("status", resp.StatusCode))
		return nil, nil
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.log.Warn("oracle response malformed", zap.Error(err))
		return nil, nil
	}
	if len(parsed.Choices) == 0 {
		c.log.Warn("oracle response carried zero choices")
		return nil, nil
	}

	message := parsed.Choices[0].Message
	if len(message.ToolCalls) == 0 {
		c.log.Info("oracle answered without tool calls, treating as no action",
			zap.Int("content_chars", len(message.Content)))
		return nil, nil
	}

	out := &decision.Decision{Content: message.Content}
	for _, tc := range message.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, decision.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: json.RawMessage(tc.Function.Arguments),
		})
	}
	return out, nil
}

func (c *Client) buildRequest(instructions, situation string) chatRequest {
	catalog := decision.Catalog()
	tools := make([]chatTool, 0, len(catalog))
	for _, def := range catalog {
		tools = append(tools, chatTool{
			Type: "function",
			Function: toolFunction{
				Name:        string(def.Kind),
				Description: def.Description,
				Parameters:  def.Parameters,
			},
		})
	}
	return chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: instructions},
			{Role: "user", Content: situation},
		},
		Tools:      tools,
		ToolChoice: "auto",
		MaxTokens:  c.cfg.MaxTokens,
	}
}

// permitCall enforces the minimum inter-call interval. The timestamp is
// claimed before the request goes out so a concurrent forced cycle cannot
// slip a second call inside the window.
func (c *Client) permitCall() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if !c.lastCallAt.IsZero() && now.Sub(c.lastCallAt) < c.cfg.MinInterval {
		return false
	}
	c.lastCallAt = now
	return true
}
