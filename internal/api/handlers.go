// Package api exposes the journal engine over HTTP for editor integrations.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/shunichi-ikebuchi/journalfmt/pkg/accounts"
	"github.com/shunichi-ikebuchi/journalfmt/pkg/journal"
)

// Handler serves the journal endpoints.
type Handler struct {
	defaults journal.Options
	index    *accounts.Index
}

// NewHandler creates a Handler. index may be nil when no workspace is
// configured; the accounts endpoint then reports an empty list.
func NewHandler(defaults journal.Options, index *accounts.Index) *Handler {
	return &Handler{defaults: defaults.Normalize(), index: index}
}

// Format handles POST /v1/format.
func (h *Handler) Format(w http.ResponseWriter, r *http.Request) {
	var req FormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	opts := req.Options.resolve(h.defaults)
	writeJSON(w, http.StatusOK, TextResponse{Text: journal.Format(req.Text, opts)})
}

// Sort handles POST /v1/sort.
func (h *Handler) Sort(w http.ResponseWriter, r *http.Request) {
	var req FormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	writeJSON(w, http.StatusOK, TextResponse{Text: journal.Sort(req.Text)})
}

// Toggle handles POST /v1/toggle.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	opts := req.Options.resolve(h.defaults)
	text := journal.ToggleComments(req.Text, req.StartLine, req.EndLine, opts)
	writeJSON(w, http.StatusOK, TextResponse{Text: text})
}

// Balance handles POST /v1/balance.
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	var req BalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	if req.Account == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Missing account")
		return
	}

	tx, ok := journal.TransactionAt(req.Text, req.Line)
	if !ok {
		writeJSON(w, http.StatusOK, BalanceResponse{})
		return
	}

	var ctx *journal.BalanceContext
	if req.CursorColumn != nil {
		ctx = &journal.BalanceContext{
			CurrentLineText: req.CurrentLineText,
			CursorColumn:    *req.CursorColumn,
		}
	}

	opts := req.Options.resolve(h.defaults)
	suggestion, ok := journal.CalculateBalancingAmount(tx, opts, req.Account, ctx)
	writeJSON(w, http.StatusOK, BalanceResponse{Suggestion: suggestion, OK: ok})
}

// Accounts handles GET /v1/accounts.
func (h *Handler) Accounts(w http.ResponseWriter, r *http.Request) {
	resp := AccountsResponse{Accounts: []string{}}
	if h.index != nil {
		if names := h.index.Accounts(r.URL.Query().Get("prefix")); names != nil {
			resp.Accounts = names
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, status int, error, description string) {
	writeJSON(w, status, ErrorResponse{
		Error:            error,
		ErrorDescription: description,
	})
}
