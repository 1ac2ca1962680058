package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one message of a multi-turn conversation.
type Turn struct {
	Role Role
	Text string
}

type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	History      []Turn   // earlier turns, oldest first; UserPrompt follows them
	Schema       *Schema  // when set, the response is constrained to JSON of this shape
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

type GenerateResponse struct {
	Text         string
	Model        string
	FinishReason string
	LatencyMs    int64
}

// LLMClient generates text from a hosted language model.
type LLMClient interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	// Available reports whether the configured model can be reached.
	Available(ctx context.Context) bool
}

type geminiClient struct {
	cfg      LLMConfig
	http     *resty.Client
	observer Observer
}

// NewGeminiClient returns an LLMClient for the generateContent REST API.
func NewGeminiClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", cfg.APIKey)
	return &geminiClient{cfg: cfg, http: rc, observer: observer}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type generationConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	MaxOutputTokens  int      `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string   `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema  `json:"responseSchema,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent  `json:"contents"`
	SystemInstruction *geminiContent   `json:"systemInstruction,omitempty"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
	ModelVersion string `json:"modelVersion"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// statusError is a non-2xx reply. Client errors other than 429 are not retried.
type statusError struct {
	code int
	msg  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("generative api returned status %d: %s", e.code, e.msg)
}

func (e *statusError) retryable() bool {
	return e.code == http.StatusTooManyRequests || e.code >= 500
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	if c.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TaskTimeout(req.Task))*time.Millisecond)
	defer cancel()

	body := c.buildRequest(req)

	var lastErr error
	attempts := 0
	for attempts < 1+c.cfg.MaxRetries {
		attempts++
		resp, err := c.doRequest(ctx, body)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(LLMCallEvent{
				Task: req.Task, Model: c.cfg.Model, LatencyMs: latency, Attempts: attempts, Success: true,
			})
			resp.LatencyMs = latency
			return resp, nil
		}
		lastErr = err

		var se *statusError
		if ctx.Err() != nil || errors.Is(err, ErrNoCandidates) || (errors.As(err, &se) && !se.retryable()) {
			break
		}
	}

	err := classify(ctx, lastErr)
	c.observer.OnCallComplete(LLMCallEvent{
		Task:      req.Task,
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Attempts:  attempts,
		ErrorCode: errorCode(err),
	})
	return nil, err
}

func (c *geminiClient) buildRequest(req GenerateRequest) geminiRequest {
	tc := c.cfg.Tasks[req.Task]
	temp := tc.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := tc.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	body := geminiRequest{
		GenerationConfig: generationConfig{Temperature: &temp, MaxOutputTokens: maxTok},
	}
	if req.SystemPrompt != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemPrompt}}}
	}
	if req.Schema != nil {
		body.GenerationConfig.ResponseMimeType = "application/json"
		body.GenerationConfig.ResponseSchema = req.Schema
	}
	for _, t := range req.History {
		body.Contents = append(body.Contents, geminiContent{Role: string(t.Role), Parts: []geminiPart{{Text: t.Text}}})
	}
	body.Contents = append(body.Contents, geminiContent{Role: string(RoleUser), Parts: []geminiPart{{Text: req.UserPrompt}}})
	return body
}

func (c *geminiClient) modelPath() string {
	return "/v1beta/models/" + url.PathEscape(c.cfg.Model)
}

func (c *geminiClient) doRequest(ctx context.Context, body geminiRequest) (*GenerateResponse, error) {
	httpResp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(c.modelPath() + ":generateContent")
	if err != nil {
		return nil, err
	}

	if httpResp.IsError() {
		var apiErr geminiError
		msg := strings.TrimSpace(string(httpResp.Body()))
		if json.Unmarshal(httpResp.Body(), &apiErr) == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		return nil, &statusError{code: httpResp.StatusCode(), msg: msg}
	}

	var resp geminiResponse
	if err := json.Unmarshal(httpResp.Body(), &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return nil, fmt.Errorf("%w: blocked (%s)", ErrNoCandidates, resp.PromptFeedback.BlockReason)
		}
		return nil, ErrNoCandidates
	}

	cand := resp.Candidates[0]
	var text strings.Builder
	for _, p := range cand.Content.Parts {
		text.WriteString(p.Text)
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("%w: empty candidate (finish reason %s)", ErrNoCandidates, cand.FinishReason)
	}
	return &GenerateResponse{
		Text:         text.String(),
		Model:        firstNonEmpty(resp.ModelVersion, c.cfg.Model),
		FinishReason: cand.FinishReason,
	}, nil
}

func (c *geminiClient) Available(ctx context.Context) bool {
	if c.cfg.APIKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := c.http.R().SetContext(ctx).Get(c.modelPath())
	if err != nil {
		return false
	}
	return resp.StatusCode() == http.StatusOK
}

func classify(ctx context.Context, err error) error {
	switch {
	case ctx.Err() != nil:
		return ErrTimeout
	case errors.Is(err, ErrNoCandidates):
		return err
	case isConnectionError(err):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	}
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	var dnsErr *net.DNSError
	return errors.As(err, &opErr) || errors.As(err, &dnsErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrNoCandidates):
		return "NO_CANDIDATES"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
