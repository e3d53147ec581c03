package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracerName identifies spans emitted by this client. Exporter and provider
// wiring stay on the application side; without a provider these calls are
// no-ops.
const tracerName = "github.com/second-state/qdrant-rest-client/v1/qdrant"

// request describes one HTTP round trip to the Qdrant REST API.
type request struct {
	// op is the logical operation name used in errors, spans, and logs.
	op string

	// method and path form the endpoint; path starts with "/".
	method string
	path   string

	// query is the raw query string without the leading "?", e.g. "wait=true".
	query string

	// body is marshaled as the JSON request body when non-nil.
	body any

	// noDecode skips envelope decoding for endpoints whose body is plain
	// text (/healthz) or irrelevant beyond the status code (points delete).
	noDecode bool
}

// doJSON issues a single request and returns the decoded response envelope.
//
// It is the one place where transport concerns live: URL composition, the
// Content-Type and conditional api-key headers, span emission, and the
// classification of failures into TransportError / RequestFailedError /
// DecodeError. Every operation funnels through here, so the with/without
// credential split exists exactly once.
func (c *Client) doJSON(ctx context.Context, r request) (*envelope, error) {
	url := c.baseURL + r.path
	if r.query != "" {
		url += "?" + r.query
	}

	var payload io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("qdrant: %s: encode request: %w", r.op, err)
		}
		payload = bytes.NewReader(data)
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, r.op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "qdrant"),
			attribute.String("db.operation", r.op),
			attribute.String("http.request.method", r.method),
			attribute.String("url.full", url),
		),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, r.method, url, payload)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &TransportError{Op: r.op, Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("api-key", c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, &TransportError{Op: r.op, Err: err}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.logger.Debug("qdrant request",
		zap.String("operation", r.op),
		zap.String("method", r.method),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		span.SetStatus(codes.Error, resp.Status)
		return nil, &RequestFailedError{
			Op:         r.op,
			StatusCode: resp.StatusCode,
			Status:     serverErrorMessage(resp.Body),
		}
	}

	if r.noDecode {
		// Drain so the transport can reuse the connection.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &envelope{}, nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &DecodeError{Op: r.op, Err: err}
	}

	return &env, nil
}

// serverErrorMessage best-effort extracts the error text from a failure
// envelope ({"status":{"error":"..."}}). Returns "" when the body is not
// that shape; the HTTP status code alone still identifies the failure.
func serverErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ""
	}
	return env.statusError()
}
