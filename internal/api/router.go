/**
 * @description
 * This file sets up the HTTP router for the payment-api. It defines the API
 * endpoints, associates them with their corresponding handlers, and applies
 * the middleware chain: panic recovery and timeouts on the outside, audit
 * logging inside, so that a panic re-raised by the audit middleware still
 * reaches the recovery layer's standard 500 mapping.
 *
 * @dependencies
 * - context, net/http: Standard Go libraries.
 * - github.com/go-chi/chi/v5: A lightweight and idiomatic router for Go.
 */

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// StoreProbe reports whether the backing store is reachable. The health
// endpoint delegates to it.
type StoreProbe func(ctx context.Context) error

// PaymentRoutes creates and returns the router for the payment service.
func PaymentRoutes(h *PaymentHandlers, probe StoreProbe, docsEnabled bool) http.Handler {
	r := chi.NewRouter()

	// Recovery and timeout wrap the audit logger so a re-raised panic is
	// still mapped to a 500 by the standard recoverer.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(AuditLogger)

	// Health check delegates to the store's own probe.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := probe(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("unhealthy"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	})

	r.Route("/payments", func(r chi.Router) {
		r.Post("/cashout", h.CashOutHandler)
		r.Get("/cashout/{transactionId}", h.GetCashOutHandler)
	})

	if docsEnabled {
		r.Get("/docs", docsPageHandler)
		r.Get("/docs/openapi.json", openAPIDocumentHandler)
	}

	return r
}
