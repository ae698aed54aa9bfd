package cvibes

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	apiURL      = "https://cvibes-api.netlify.app/api"
	userAgent   = "ArifBabayev05/cvibes (arif.babayev@outlook.com)"
	analyzePath = "/analyze-cvs"
)

type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

// New creates an analysis API client. The token is optional: the public
// endpoint accepts anonymous batches.
func New(ctx context.Context, logger *zap.Logger, token string) *Client {
	return &Client{
		ctx:    ctx,
		token:  token,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}

// Analyze submits the whole document batch in a single request and returns
// the normalized candidates together with the count of raw entries dropped
// during normalization. A successful call that yields no usable candidates
// is reported as ErrEmptyResult.
func (c *Client) Analyze(documents []*Document) (*Candidates, int, error) {
	if len(documents) == 0 {
		return nil, 0, ErrEmptyResult
	}

	resp, err := c.postAnalysis(documents)
	if err != nil {
		return nil, 0, err
	}

	candidates, dropped, err := Normalize(resp)
	if err != nil {
		return nil, 0, err
	}

	c.logger.Debug("normalized analysis response",
		zap.Int("total_processed", resp.TotalProcessed),
		zap.Int("candidates", candidates.Len()),
		zap.Int("dropped", dropped),
	)

	if candidates.Len() == 0 {
		return nil, dropped, ErrEmptyResult
	}

	return candidates, dropped, nil
}
