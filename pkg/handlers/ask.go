package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/askdb-ai/askdb-engine/pkg/database"
	"github.com/askdb-ai/askdb-engine/pkg/models"
	"github.com/askdb-ai/askdb-engine/pkg/services"
)

// AskRequest is the body of POST /api/ask.
// Schema uses the wire form {"table": ["col", ...], ...}; key order is
// preserved and drives tie-breaks downstream. When Schema is omitted and
// a database is configured, the live schema is introspected instead.
type AskRequest struct {
	Prompt  string        `json:"prompt"`
	Schema  models.Schema `json:"schema,omitempty"`
	Execute bool          `json:"execute,omitempty"`
}

// AskHandler handles natural language query requests.
type AskHandler struct {
	agent    services.Agent
	executor *database.Executor // nil when no database is configured
	logger   *zap.Logger
}

// NewAskHandler creates an AskHandler. executor may be nil.
func NewAskHandler(agent services.Agent, executor *database.Executor, logger *zap.Logger) *AskHandler {
	return &AskHandler{
		agent:    agent,
		executor: executor,
		logger:   logger,
	}
}

// RegisterRoutes registers the ask handler's routes on the given mux.
func (h *AskHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/ask", h.Ask)
}

// Ask handles POST /api/ask.
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		_ = ErrorResponse(w, http.StatusMethodNotAllowed, "method_not_allowed", "use POST")
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	if req.Prompt == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "missing_prompt", "prompt is required")
		return
	}

	schema := req.Schema
	if len(schema) == 0 {
		if h.executor == nil {
			_ = ErrorResponse(w, http.StatusBadRequest, "missing_schema",
				"schema is required when no database is configured")
			return
		}
		introspected, err := h.executor.IntrospectSchema(r.Context())
		if err != nil {
			h.logger.Error("schema introspection failed", zap.Error(err))
			_ = ErrorResponse(w, http.StatusBadGateway, "introspection_failed",
				"could not read database schema")
			return
		}
		schema = introspected
	}

	var execute services.QueryExecutorFunc
	if req.Execute {
		if h.executor == nil {
			_ = ErrorResponse(w, http.StatusBadRequest, "execution_unavailable",
				"query execution requested but no database is configured")
			return
		}
		execute = h.executor.Execute
	}

	result := h.agent.Process(r.Context(), req.Prompt, schema, execute)

	if err := WriteJSON(w, http.StatusOK, result); err != nil {
		h.logger.Error("Failed to encode ask response", zap.Error(err))
	}
}
