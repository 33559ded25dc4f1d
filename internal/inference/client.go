// Package inference calls the hosted language-model inference API used for
// flashcard generation and question answering.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	apperrors "github.com/Kay-svg505/Philologic-platform/internal/errors"
)

const (
	opGenerate = "generate"
	opAnswer   = "answer"

	// maxErrorBody bounds how much of an upstream error body is kept for logs.
	maxErrorBody = 512
)

// Client is the inference collaborator used by the services.
type Client interface {
	// GenerateText sends prompt to the text-generation model and returns its output.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// AnswerQuestion asks the question-answering model about contextText. An
	// empty string means the model returned no answer field.
	AnswerQuestion(ctx context.Context, question, contextText string) (string, error)
}

// Observer receives one call per upstream request.
type Observer interface {
	ObserveInference(operation, outcome string, duration time.Duration)
}

// StatusError is returned when the service answers with anything but 200 OK.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("inference service returned status %d", e.StatusCode)
}

// Is lets callers match with errors.Is(err, apperrors.ErrUpstream).
func (e *StatusError) Is(target error) bool {
	return target == apperrors.ErrUpstream
}

// TransportError wraps network and decoding failures.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// Is lets callers match with errors.Is(err, apperrors.ErrInference).
func (e *TransportError) Is(target error) bool {
	return target == apperrors.ErrInference
}

// Config configures HTTPClient.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	QAModel string
	// Timeout bounds each call; zero leaves calls bounded only by the request context.
	Timeout time.Duration
}

// HTTPClient talks to a Hugging Face style inference endpoint:
// POST {BaseURL}/{model} with a bearer token.
type HTTPClient struct {
	cfg      Config
	http     *http.Client
	logger   *zap.Logger
	observer Observer
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a new inference client. observer may be nil.
func NewHTTPClient(cfg Config, logger *zap.Logger, observer Observer) *HTTPClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &HTTPClient{
		cfg:      cfg,
		http:     &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
		observer: observer,
	}
}

type generateRequest struct {
	Inputs string `json:"inputs"`
}

type generatedText struct {
	GeneratedText string `json:"generated_text"`
}

type qaInputs struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

type qaRequest struct {
	Inputs qaInputs `json:"inputs"`
}

type qaResponse struct {
	Answer string `json:"answer"`
}

// GenerateText implements Client.
func (c *HTTPClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	body, err := c.post(ctx, opGenerate, c.cfg.Model, generateRequest{Inputs: prompt})
	if err != nil {
		return "", err
	}

	// Text generation answers with a list; some deployments return a bare object.
	var list []generatedText
	if err := json.Unmarshal(body, &list); err == nil {
		if len(list) == 0 {
			return "", &TransportError{Err: fmt.Errorf("decode generation response: empty result list")}
		}
		return list[0].GeneratedText, nil
	}
	var single generatedText
	if err := json.Unmarshal(body, &single); err != nil {
		return "", &TransportError{Err: fmt.Errorf("decode generation response: %w", err)}
	}
	return single.GeneratedText, nil
}

// AnswerQuestion implements Client.
func (c *HTTPClient) AnswerQuestion(ctx context.Context, question, contextText string) (string, error) {
	body, err := c.post(ctx, opAnswer, c.cfg.QAModel, qaRequest{Inputs: qaInputs{Question: question, Context: contextText}})
	if err != nil {
		return "", err
	}

	var resp qaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &TransportError{Err: fmt.Errorf("decode answer response: %w", err)}
	}
	return resp.Answer, nil
}

func (c *HTTPClient) post(ctx context.Context, op, model string, payload interface{}) (body []byte, err error) {
	start := time.Now()
	outcome := "ok"
	defer func() {
		if c.observer != nil {
			c.observer.ObserveInference(op, outcome, time.Since(start))
		}
	}()

	raw, err := json.Marshal(payload)
	if err != nil {
		outcome = "error"
		return nil, &TransportError{Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/"+model, bytes.NewReader(raw))
	if err != nil {
		outcome = "error"
		return nil, &TransportError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		outcome = "error"
		c.logger.Warn("inference request failed", zap.String("operation", op), zap.String("model", model), zap.Error(err))
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		outcome = "error"
		return nil, &TransportError{Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		outcome = "upstream_status"
		snippet := truncateBody(body, maxErrorBody)
		c.logger.Warn("inference service returned error status",
			zap.String("operation", op),
			zap.String("model", model),
			zap.Int("status", resp.StatusCode),
			zap.String("body", snippet),
		)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: snippet}
	}

	return body, nil
}

// truncateBody keeps at most limit bytes of body and drops any rune split by the cut.
func truncateBody(body []byte, limit int) string {
	if len(body) > limit {
		body = body[:limit]
		for i := 0; i < utf8.UTFMax && len(body) > 0 && !utf8.Valid(body); i++ {
			body = body[:len(body)-1]
		}
	}
	return string(body)
}
