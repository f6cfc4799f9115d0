/**
 * @description
 * This file contains the audit logging middleware. It wraps every boundary
 * call, logging the inbound request (method, path, headers, and the body for
 * JSON payloads) and the outbound response (status, elapsed time, body) under
 * a short correlation id, without ever changing what the caller observes.
 *
 * The wrapped handler writes into an in-memory buffer instead of the real
 * response stream; only after the handler completes is the buffer copied
 * verbatim to the caller. A panic raised by the handler discards the buffer,
 * is logged with the correlation id, and is re-raised unchanged so the
 * router's standard recovery still maps it to a 500.
 *
 * @dependencies
 * - bytes, io, log, net/http, strings, time: Standard Go libraries.
 * - github.com/google/uuid: For correlation id generation.
 */

package api

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// auditResponseRecorder buffers the wrapped handler's output so the audit log
// can include the response body before any byte reaches the caller. Headers
// are written straight to the underlying writer's header map, which is not
// flushed until WriteHeader is called on the real writer during copyTo.
type auditResponseRecorder struct {
	header http.Header
	body   bytes.Buffer
	status int
}

func newAuditResponseRecorder() *auditResponseRecorder {
	return &auditResponseRecorder{
		header: make(http.Header),
		status: http.StatusOK,
	}
}

func (rec *auditResponseRecorder) Header() http.Header {
	return rec.header
}

func (rec *auditResponseRecorder) WriteHeader(status int) {
	rec.status = status
}

func (rec *auditResponseRecorder) Write(p []byte) (int, error) {
	return rec.body.Write(p)
}

// copyTo forwards the recorded headers, status code, and body to the real
// response writer, byte for byte.
func (rec *auditResponseRecorder) copyTo(w http.ResponseWriter) {
	for key, values := range rec.header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.WriteHeader(rec.status)
	if rec.body.Len() > 0 {
		if _, err := rec.body.WriteTo(w); err != nil {
			log.Printf("level=error component=audit msg=\"response flush failed\" err=%v", err)
		}
	}
}

// AuditLogger returns a middleware that logs every request and response
// passing through the handler chain. It observes traffic only: response
// bytes, headers, and status reach the caller exactly as the wrapped
// handler produced them.
func AuditLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		requestID := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

		logRequest(r, requestID)

		rec := newAuditResponseRecorder()

		defer func() {
			if recovered := recover(); recovered != nil {
				// Drop the partial buffer; the caller-visible stream has not
				// been touched yet. The router's recovery middleware owns the
				// failure mapping.
				log.Printf("level=error component=audit request_id=%s msg=\"handler panicked\" method=%s path=%s duration_ms=%d panic_type=%T",
					requestID, r.Method, r.URL.Path, time.Since(started).Milliseconds(), recovered)
				panic(recovered)
			}
		}()

		next.ServeHTTP(rec, r)

		logResponse(r, rec, requestID, time.Since(started).Milliseconds())
		rec.copyTo(w)
	})
}

// logRequest logs the inbound call. The raw body is included only for JSON
// payloads with a known length, and the body reader is restored afterwards so
// the downstream handler sees an unread stream.
func logRequest(r *http.Request, requestID string) {
	requestBody := "empty"
	if r.ContentLength > 0 && strings.Contains(r.Header.Get("Content-Type"), "application/json") && r.Body != nil {
		raw, err := io.ReadAll(r.Body)
		if err == nil {
			r.Body = io.NopCloser(bytes.NewReader(raw))
			if len(raw) > 0 {
				requestBody = string(raw)
			}
		}
	}

	var headers []string
	for key, values := range r.Header {
		headers = append(headers, fmt.Sprintf("%s:%s", key, strings.Join(values, ",")))
	}

	log.Printf("level=info component=audit request_id=%s direction=request method=%s path=%s%s headers=%q body=%q",
		requestID, r.Method, r.URL.Path, queryString(r), strings.Join(headers, ", "), requestBody)
}

// logResponse logs the buffered response. Client and server errors are logged
// at warning severity, everything else as informational.
func logResponse(r *http.Request, rec *auditResponseRecorder, requestID string, elapsedMs int64) {
	level := "info"
	outcome := "success"
	if rec.status >= 400 {
		level = "warn"
		outcome = "error_response"
	}

	responseBody := "empty"
	if rec.body.Len() > 0 {
		responseBody = rec.body.String()
	}

	log.Printf("level=%s component=audit request_id=%s direction=response outcome=%s method=%s path=%s status=%d duration_ms=%d body=%q",
		level, requestID, outcome, r.Method, r.URL.Path, rec.status, elapsedMs, responseBody)
}

func queryString(r *http.Request) string {
	if r.URL.RawQuery == "" {
		return ""
	}
	return "?" + r.URL.RawQuery
}
