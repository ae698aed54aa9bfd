package cvibes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

const contentType = "application/json"

type analysisRequest struct {
	Documents []*Document `json:"documents"`
}

// errorBody is the shape the analysis API uses for non-success responses.
// The message field is optional and the body may not be JSON at all.
type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) postAnalysis(documents []*Document) (*AnalysisResponse, error) {
	payload, err := json.Marshal(&analysisRequest{Documents: documents})
	if err != nil {
		return nil, fmt.Errorf("encode analysis request: %w", err)
	}

	url := fmt.Sprintf("%s%s", c.APIURL, analyzePath)

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build analysis request: %w", err)
	}

	req = c.setHeaders(req)

	resp, err := c.request(req)
	if err != nil {
		return nil, &TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body, resp.StatusCode),
		}
	}

	var response *AnalysisResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}

	return response, nil
}

// errorMessage extracts a human-readable message from an error body,
// falling back to a status-derived message when the body is not parseable.
func errorMessage(body []byte, status int) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}

	return fmt.Sprintf("analysis request failed (status: %d)", status)
}

func (c *Client) request(req *http.Request) (*http.Response, error) {
	c.logger.Debug("make request", zap.String("url", req.URL.String()))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Content-Type", contentType)

	return req
}
