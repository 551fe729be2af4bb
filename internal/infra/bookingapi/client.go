// Package bookingapi is the client of the external booking API. Every response
// shape the API produces is normalized here and nowhere else.
package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"barberflow/internal/infra"
	"barberflow/internal/infra/metrics"
	"barberflow/internal/pkg/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const maxResponseBytes = 4 << 20

// tracer comes from the global provider; without one installed the spans are
// no-ops.
var tracer = otel.Tracer("barberflow.internal.infra.bookingapi")

type Client struct {
	baseURL    string
	token      string
	loc        *time.Location
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// NewClient builds a client. loc is the shop time zone used for timestamps
// the API sends without an offset. m may be nil.
func NewClient(cfg config.UpstreamConfig, loc *time.Location, logger *slog.Logger, m *metrics.Metrics, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		loc:     loc,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger:  logger,
		metrics: m,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	endpoint string
	method   string
	path     string
	query    url.Values
	body     any
	// ack requires a JSON envelope with success=true before a 2xx counts.
	ack bool
}

// do runs one request. No automatic retries: a failed call is reported to the
// caller, which decides whether to revert or surface it.
func (c *Client) do(ctx context.Context, r request, out any) error {
	ctx, span := tracer.Start(ctx, "bookingapi."+r.endpoint, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", r.method),
		attribute.String("bookingapi.path", r.path),
	)

	start := time.Now()
	status, err := c.roundTrip(ctx, r, out)
	span.SetAttributes(attribute.Int("http.response.status_code", status))

	outcome := "ok"
	if err != nil {
		outcome = "error"
		if ue, ok := infra.AsUpstreamError(err); ok {
			outcome = strings.ToLower(string(ue.Kind))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}
	c.metrics.ObserveUpstream(r.endpoint, outcome, time.Since(start).Seconds())
	return err
}

func (c *Client) roundTrip(ctx context.Context, r request, out any) (int, error) {
	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return 0, infra.WrapUpstreamErr(c.logger, infra.KindMalformed, 0, "encode request body", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return 0, infra.WrapUpstreamErr(c.logger, infra.KindMalformed, 0, "build request", err)
	}
	if len(r.query) > 0 {
		req.URL.RawQuery = r.query.Encode()
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, 0, r.endpoint+" request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, resp.StatusCode, r.endpoint+" read body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, c.statusError(resp.StatusCode, raw)
	}

	// A 2xx can still carry {"success": false}.
	env, ok := decodeEnvelope(raw)
	if ok && env.Success != nil && !*env.Success {
		return resp.StatusCode, infra.NewRejection(c.logger, infra.KindRejected, resp.StatusCode, env.text("request rejected"), env.fields())
	}
	if r.ack && (!ok || env.Success == nil) {
		return resp.StatusCode, infra.WrapUpstreamErr(c.logger, infra.KindMalformed, resp.StatusCode, r.endpoint+" response without acknowledgement", nil)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, infra.WrapUpstreamErr(c.logger, infra.KindMalformed, resp.StatusCode, r.endpoint+" decode response", err)
	}
	return resp.StatusCode, nil
}

func (c *Client) statusError(status int, raw []byte) error {
	env, _ := decodeEnvelope(raw)
	msg := env.text(http.StatusText(status))

	switch {
	case status == http.StatusNotFound:
		return infra.NewRejection(c.logger, infra.KindNotFound, status, msg, nil)
	case status >= 500:
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, status, msg, nil)
	default:
		return infra.NewRejection(c.logger, infra.KindRejected, status, msg, env.fields())
	}
}
