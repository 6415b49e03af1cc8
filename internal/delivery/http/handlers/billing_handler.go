package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopstream/billing-service/internal/domain"
	"github.com/shopstream/billing-service/internal/usecase"
	billingdto "github.com/shopstream/billing-service/internal/usecase/dto/billing"
)

// BillingHandler is the trigger surface replacing the testbed UI: one
// endpoint per button.
type BillingHandler struct {
	billing      usecase.BillingUsecase
	transactions usecase.TransactionUsecase
}

func NewBillingHandler(billing usecase.BillingUsecase, transactions usecase.TransactionUsecase) *BillingHandler {
	return &BillingHandler{
		billing:      billing,
		transactions: transactions,
	}
}

func (h *BillingHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/v1/operations/{productKey}", h.RunOperation).Methods("POST")
	r.HandleFunc("/api/v1/operations/{productKey}/batch", h.RunBatch).Methods("POST")
	r.HandleFunc("/api/v1/transactions", h.RecentTransactions).Methods("GET")
	r.HandleFunc("/api/v1/transactions/{id}/void", h.VoidTransaction).Methods("POST")
	r.HandleFunc("/healthz", h.Health).Methods("GET")
}

type operationRequest struct {
	EntityID     string `json:"entity_id"`
	ForceFailure bool   `json:"force_failure"`
}

type operationResponse struct {
	TransactionID string `json:"transaction_id"`
	EntityID      string `json:"entity_id"`
	ProductKey    string `json:"product_key"`
	Status        string `json:"status"`
	Revenue       string `json:"revenue"`
	Detail        string `json:"detail,omitempty"`
	Error         string `json:"error,omitempty"`
}

// RunOperation handles POST /api/v1/operations/{productKey}
func (h *BillingHandler) RunOperation(w http.ResponseWriter, r *http.Request) {
	productKey := mux.Vars(r)["productKey"]

	var req operationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	output, err := h.billing.RunOperation(r.Context(), &billingdto.OperationInput{
		EntityID:     req.EntityID,
		ProductKey:   productKey,
		ForceFailure: req.ForceFailure,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownProduct):
			writeError(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, domain.ErrEmptyEntityID):
			writeError(w, err.Error(), http.StatusBadRequest)
		case output == nil:
			writeError(w, err.Error(), http.StatusInternalServerError)
		default:
			// the operation ran and was voided; the caller still gets the record
			writeJSON(w, http.StatusBadGateway, operationResponse{
				TransactionID: output.TransactionID,
				EntityID:      output.EntityID,
				ProductKey:    output.ProductKey,
				Status:        output.Status,
				Revenue:       output.Revenue.StringFixed(2),
				Error:         err.Error(),
			})
		}
		return
	}

	writeJSON(w, http.StatusOK, operationResponse{
		TransactionID: output.TransactionID,
		EntityID:      output.EntityID,
		ProductKey:    output.ProductKey,
		Status:        output.Status,
		Revenue:       output.Revenue.StringFixed(2),
		Detail:        output.Detail,
	})
}

type batchRequest struct {
	EntityID     string `json:"entity_id"`
	Count        int    `json:"count"`
	ForceFailure bool   `json:"force_failure"`
}

type batchResponse struct {
	RunID     string `json:"run_id"`
	Requested int    `json:"requested"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
}

// RunBatch handles POST /api/v1/operations/{productKey}/batch
func (h *BillingHandler) RunBatch(w http.ResponseWriter, r *http.Request) {
	productKey := mux.Vars(r)["productKey"]

	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	output, err := h.billing.RunBatch(r.Context(), &billingdto.BatchInput{
		EntityID:     req.EntityID,
		ProductKey:   productKey,
		Count:        req.Count,
		ForceFailure: req.ForceFailure,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownProduct):
			writeError(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidBatchCount), errors.Is(err, domain.ErrEmptyEntityID):
			writeError(w, err.Error(), http.StatusBadRequest)
		default:
			writeError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, batchResponse{
		RunID:     output.RunID,
		Requested: output.Requested,
		Succeeded: output.Succeeded,
		Failed:    output.Failed,
	})
}

type transactionResponse struct {
	ID         string    `json:"id"`
	EntityID   string    `json:"entity_id"`
	ProductKey string    `json:"product_key"`
	Status     string    `json:"status"`
	Revenue    string    `json:"revenue"`
	CreatedAt  time.Time `json:"created_at"`
}

// RecentTransactions handles GET /api/v1/transactions?limit=N
func (h *BillingHandler) RecentTransactions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, "limit must be an integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	txns := h.transactions.FetchRecent(r.Context(), limit)

	response := make([]transactionResponse, len(txns))
	for i, txn := range txns {
		response[i] = transactionResponse{
			ID:         txn.ID,
			EntityID:   txn.EntityID,
			ProductKey: txn.ProductKey,
			Status:     string(txn.Status),
			Revenue:    txn.Revenue.StringFixed(2),
			CreatedAt:  txn.CreatedAt,
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// VoidTransaction handles POST /api/v1/transactions/{id}/void
func (h *BillingHandler) VoidTransaction(w http.ResponseWriter, r *http.Request) {
	txnID := mux.Vars(r)["id"]

	if err := h.transactions.VoidTransaction(r.Context(), txnID); err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"transaction_id": txnID,
		"status":         string(domain.StatusVoided),
	})
}

func (h *BillingHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, message string, code int) {
	writeJSON(w, code, map[string]string{"error": message})
}
