package gemini

import (
	"FridgeMate/internal/utils"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

const maxAttempts = 2

type (
	ClientConfig struct {
		APIKey  string
		Model   string
		BaseURL string
		Timeout time.Duration
		// Now is used to turn shelf life in days into expiry dates.
		Now        func() time.Time
		HTTPClient *http.Client
	}

	Client struct {
		apiKey     string
		model      string
		baseURL    string
		timeout    time.Duration
		now        func() time.Time
		httpClient *http.Client
	}

	inlineData struct {
		MimeType string `json:"mime_type"`
		Data     string `json:"data"`
	}

	part struct {
		Text       string      `json:"text,omitempty"`
		InlineData *inlineData `json:"inline_data,omitempty"`
	}

	content struct {
		Parts []part `json:"parts"`
	}

	generationConfig struct {
		Temperature      float64 `json:"temperature"`
		ResponseMimeType string  `json:"responseMimeType"`
		ResponseSchema   *Schema `json:"responseSchema"`
	}

	generateContentRequest struct {
		Contents         []content        `json:"contents"`
		GenerationConfig generationConfig `json:"generationConfig"`
	}

	generateContentResponse struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
)

func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    cfg.Timeout,
		now:        cfg.Now,
		httpClient: cfg.HTTPClient,
	}
}

// NewGeminiClient builds a client from the loaded application config.
func NewGeminiClient() *Client {
	return NewClient(ClientConfig{
		APIKey:  utils.GetConfig("GEMINI_API_KEY"),
		Model:   utils.GetConfig("GEMINI_MODEL"),
		BaseURL: utils.GetConfig("GEMINI_BASE_URL"),
		Timeout: time.Duration(utils.GetConfigInt("GEMINI_TIMEOUT_SECONDS", 30)) * time.Second,
	})
}

func textPart(text string) part {
	return part{Text: text}
}

func imagePart(mimeType string, data []byte) part {
	return part{InlineData: &inlineData{
		MimeType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}}
}

// generate sends one generateContent request and returns the model text. A
// transient failure is retried once; everything else fails immediately.
func (c *Client) generate(ctx context.Context, op string, parts []part, schema *Schema, temperature float64) (string, error) {
	if c.apiKey == "" {
		return "", &GatewayError{Op: op, Reason: ReasonTransport, Err: errors.New("GEMINI_API_KEY not set")}
	}

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: generationConfig{
			Temperature:      temperature,
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		},
	})
	if err != nil {
		return "", &GatewayError{Op: op, Reason: ReasonTransport, Err: err}
	}

	var lastErr *GatewayError
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, gwErr := c.do(ctx, op, body)
		if gwErr == nil {
			return text, nil
		}
		lastErr = gwErr

		if !gwErr.Transient() || ctx.Err() != nil {
			break
		}
		if attempt < maxAttempts {
			utils.Logger().WithFields(logrus.Fields{
				"module":  "gemini",
				"op":      op,
				"attempt": attempt,
			}).Warn("retrying after transient failure: " + gwErr.Error())
		}
	}
	return "", lastErr
}

func (c *Client) do(ctx context.Context, op string, body []byte) (string, *GatewayError) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// the key travels in a header so it never shows up in a *url.Error
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &GatewayError{Op: op, Reason: ReasonTransport, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &GatewayError{Op: op, Reason: ReasonTransport, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GatewayError{Op: op, Reason: ReasonTransport, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &GatewayError{
			Op:         op,
			Reason:     ReasonStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("gemini API error: %s - %s", resp.Status, truncate(string(raw), 512)),
		}
	}

	var geminiResp generateContentResponse
	if err := json.Unmarshal(raw, &geminiResp); err != nil {
		return "", &GatewayError{Op: op, Reason: ReasonParse, Err: err}
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", &GatewayError{Op: op, Reason: ReasonEmpty, Err: errors.New("no candidates in response")}
	}

	var sb strings.Builder
	for _, p := range geminiResp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// decodeArray checks that the model text is a JSON array and returns its elements.
func decodeArray(op string, text string) ([]json.RawMessage, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	text = strings.TrimSpace(text)

	if !json.Valid([]byte(text)) {
		return nil, &GatewayError{Op: op, Reason: ReasonParse, Err: fmt.Errorf("model returned non-json output: %s", truncate(text, 256))}
	}
	if !strings.HasPrefix(text, "[") {
		return nil, &GatewayError{Op: op, Reason: ReasonSchema, Err: errors.New("expected a JSON array at top level")}
	}

	var records []json.RawMessage
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		return nil, &GatewayError{Op: op, Reason: ReasonSchema, Err: err}
	}
	return records, nil
}

// truncate keeps at most n bytes of s without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
