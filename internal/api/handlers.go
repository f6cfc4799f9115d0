/**
 * @description
 * This file contains the HTTP handlers for the payment-api's endpoints.
 * Handlers are responsible for parsing incoming requests, calling the
 * appropriate methods on the application service, and writing the HTTP
 * response. They act as the bridge between the web layer and the business
 * logic layer.
 *
 * @dependencies
 * - encoding/json, log, net/http: Standard Go libraries.
 * - github.com/go-chi/chi/v5: For URL parameter extraction.
 * - internal/app, internal/domain: For service logic and models.
 */

package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emensonlima01/payment-api/internal/app"
	"github.com/emensonlima01/payment-api/internal/domain"
)

// PaymentHandlers holds the application service that handlers will use.
type PaymentHandlers struct {
	service *app.Service
}

// NewPaymentHandlers creates a new instance of PaymentHandlers.
func NewPaymentHandlers(service *app.Service) *PaymentHandlers {
	return &PaymentHandlers{service: service}
}

// validationFailureResponse is the body returned for a request that failed
// structural validation. It enumerates every field violation found.
type validationFailureResponse struct {
	Errors []domain.FieldViolation `json:"errors"`
}

// CashOutHandler handles cash-out submission requests. A valid request is
// acknowledged with 202 Accepted: the caller is told the request is queued,
// not that funds have moved. Requests with validation violations are rejected
// with 400 before they reach the service, so invalid input never reaches
// storage.
func (h *PaymentHandlers) CashOutHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.CashOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("level=warn component=api endpoint=cashout outcome=reject reason=invalid_json err=%v", err)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if violations := domain.ValidateCashOutRequest(req); len(violations) > 0 {
		log.Printf("level=warn component=api endpoint=cashout outcome=reject reason=validation transaction_id=%s violations=%d", req.TransactionID, len(violations))
		h.writeJSON(w, http.StatusBadRequest, validationFailureResponse{Errors: violations})
		return
	}

	if err := h.service.ProcessCashOut(r.Context(), req); err != nil {
		log.Printf("level=error component=api endpoint=cashout outcome=failed transaction_id=%s err=%v", req.TransactionID, err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Printf("level=info component=api endpoint=cashout outcome=accepted transaction_id=%s", req.TransactionID)
	w.WriteHeader(http.StatusAccepted)
}

// GetCashOutHandler handles cash-out lookup requests by transaction id.
func (h *PaymentHandlers) GetCashOutHandler(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")

	record, err := h.service.GetCashOut(r.Context(), transactionID)
	if err != nil {
		log.Printf("level=error component=api endpoint=get_cashout outcome=failed transaction_id=%s err=%v", transactionID, err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if record == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, record)
}

func (h *PaymentHandlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("level=error component=api msg=\"response encode failed\" err=%v", err)
	}
}

func (h *PaymentHandlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
