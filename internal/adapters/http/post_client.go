package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/bft-labs/signin/internal/ports"
)

// RequestIDHeader carries a per-request correlation ID.
const RequestIDHeader = "X-Request-Id"

// PostClient implements ports.HTTPPostClient using resty.
type PostClient[B, R any] struct {
	client *resty.Client
	logger ports.Logger
}

// NewPostClient creates a POST client over an existing resty client.
// Use NewRestyClient to build one with the default settings.
func NewPostClient[B, R any](client *resty.Client, logger ports.Logger) *PostClient[B, R] {
	return &PostClient[B, R]{
		client: client,
		logger: logger,
	}
}

// NewRestyClient builds a resty client sending and accepting JSON.
// httpClient may be nil; timeout <= 0 keeps the client's own timeout.
func NewRestyClient(httpClient *http.Client, timeout time.Duration, logger ports.Logger) *resty.Client {
	var c *resty.Client
	if httpClient != nil {
		c = resty.NewWithClient(httpClient)
	} else {
		c = resty.New()
	}
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	c.SetHeader("Content-Type", "application/json")
	c.SetHeader("Accept", "application/json")
	c.SetLogger(restyLogger{logger: logger})
	return c
}

// Post sends params.Body as JSON to params.URL.
// Every response that reached the client is returned as status + body,
// whether resty reported it as an error or not.
func (c *PostClient[B, R]) Post(ctx context.Context, params ports.HTTPPostParams[B]) (ports.HTTPResponse[R], error) {
	var out ports.HTTPResponse[R]

	requestID := uuid.NewString()
	c.logger.Debug("http post",
		ports.String("url", params.URL),
		ports.String("request_id", requestID),
	)

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID).
		SetBody(params.Body).
		Post(params.URL)
	if err != nil {
		if resp == nil || resp.RawResponse == nil {
			return out, fmt.Errorf("post %s: %w", params.URL, err)
		}
		c.logger.Warn("http post returned error with response",
			ports.String("request_id", requestID),
			ports.Int("status", resp.StatusCode()),
			ports.Err(err),
		)
	}

	out.StatusCode = ports.HTTPStatusCode(resp.StatusCode())
	c.logger.Debug("http post completed",
		ports.String("request_id", requestID),
		ports.Int("status", resp.StatusCode()),
		ports.Duration("elapsed", resp.Time()),
	)

	body := resp.Body()
	if len(body) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out.Body); err != nil {
		if resp.IsSuccess() {
			return out, fmt.Errorf("decode response body: %w", err)
		}
		// error pages are often HTML; the status is what matters
		c.logger.Debug("discarding undecodable error body",
			ports.String("request_id", requestID),
			ports.Err(err),
		)
		var zero R
		out.Body = zero
	}
	return out, nil
}

// restyLogger routes resty's printf-style logging into ports.Logger.
type restyLogger struct {
	logger ports.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(restyMessage(format, v))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(restyMessage(format, v))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(restyMessage(format, v))
}

func restyMessage(format string, v []interface{}) string {
	return strings.TrimRight(fmt.Sprintf(format, v...), "\n")
}
