package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"lumera-client/internal/dto"
	"lumera-client/internal/pkg/logger"

	"github.com/google/uuid"
)

// TokenSource provides the stored credential for outgoing requests.
// The session repository satisfies this; requests are sent with whatever
// token is stored at call time (expiry is detected reactively, not checked
// up front).
type TokenSource interface {
	Token() string
}

// Client is the uniform request client for the Lumera analysis API.
// All responses are decoded here and all failures are classified here, so
// callers only ever see *api.Error.
type Client struct {
	BaseURL string
	tokens  TokenSource
	http    *http.Client
	logger  logger.ILogger
}

func NewClient(baseURL string, tokens TokenSource, log logger.ILogger) *Client {
	return &Client{
		BaseURL: baseURL,
		tokens:  tokens,
		http:    &http.Client{Timeout: 60 * time.Second},
		logger:  log,
	}
}

func (c *Client) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var res dto.AuthResponse
	if err := c.postJSON(ctx, "/auth/login", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	var res dto.AuthResponse
	if err := c.postJSON(ctx, "/auth/signup", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UploadAnalysis posts one image as a multipart payload (field name "image")
// and returns the newly created analysis.
func (c *Client) UploadAnalysis(ctx context.Context, filename, contentType string, file io.Reader) (*dto.AnalysisResponse, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="image"; filename=%q`, filename)}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, AsError(err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, AsError(err)
	}
	if err := writer.Close(); err != nil {
		return nil, AsError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/analysis/upload", body)
	if err != nil {
		return nil, AsError(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var res dto.AnalysisResponse
	if err := c.do(req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) History(ctx context.Context) (*dto.HistoryResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/analysis/history", nil)
	if err != nil {
		return nil, AsError(err)
	}
	var res dto.HistoryResponse
	if err := c.do(req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Result(ctx context.Context, id int) (*dto.AnalysisResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/analysis/result/%d", c.BaseURL, id), nil)
	if err != nil {
		return nil, AsError(err)
	}
	var res dto.AnalysisResponse
	if err := c.do(req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Image fetches stored image bytes by reference path from the static
// sub-route. Returns the bytes and the reported content type.
func (c *Client) Image(ctx context.Context, path string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/analysis/uploads/"+path, nil)
	if err != nil {
		return nil, "", AsError(err)
	}
	authed := c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", AsError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", AsError(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", Classify(resp.StatusCode, data, authed)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}, out interface{}) error {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return AsError(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return AsError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Credential exchanges never carry the stored token; a 401 here is a
	// rejected password, not an expired session
	return c.send(req, out, false)
}

// do sends the request with the stored bearer token, classifies failures and
// decodes the 2xx body into out.
func (c *Client) do(req *http.Request, out interface{}) error {
	return c.send(req, out, true)
}

func (c *Client) send(req *http.Request, out interface{}, attachToken bool) error {
	authed := false
	if attachToken {
		authed = c.authorize(req)
	}

	requestId := uuid.New().String()
	c.logger.Debug("api", "request", map[string]interface{}{
		"request_id": requestId,
		"method":     req.Method,
		"url":        req.URL.String(),
	})

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("api", "transport failure", map[string]interface{}{
			"request_id": requestId,
			"error":      err.Error(),
		})
		return AsError(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return AsError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		classified := Classify(resp.StatusCode, bodyBytes, authed)
		c.logger.Warn("api", "request rejected", map[string]interface{}{
			"request_id": requestId,
			"status":     resp.StatusCode,
			"kind":       classified.Kind.String(),
		})
		return classified
	}

	if out != nil {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return NewError(KindDecodeFailure, "record unavailable")
		}
	}
	return nil
}

// authorize attaches the stored bearer token, if any, and reports whether
// the request now carries a credential. Classification depends on this: only
// a rejected credential counts as an expired session.
func (c *Client) authorize(req *http.Request) bool {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		return true
	}
	return false
}
