package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/askdb-ai/askdb-engine/pkg/models"
	"github.com/askdb-ai/askdb-engine/pkg/services"
)

// AnalyzeSchemaRequest is the body of POST /api/schema/analyze.
type AnalyzeSchemaRequest struct {
	Schema models.Schema `json:"schema"`
}

// DomainsResponse is the body of GET /api/domains.
type DomainsResponse struct {
	Domains []models.Domain `json:"domains"`
}

// SchemaHandler handles schema analysis and domain listing.
type SchemaHandler struct {
	agent  services.Agent
	logger *zap.Logger
}

// NewSchemaHandler creates a SchemaHandler.
func NewSchemaHandler(agent services.Agent, logger *zap.Logger) *SchemaHandler {
	return &SchemaHandler{agent: agent, logger: logger}
}

// RegisterRoutes registers the schema handler's routes on the given mux.
func (h *SchemaHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/schema/analyze", h.Analyze)
	mux.HandleFunc("/api/domains", h.Domains)
}

// Analyze handles POST /api/schema/analyze.
func (h *SchemaHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		_ = ErrorResponse(w, http.StatusMethodNotAllowed, "method_not_allowed", "use POST")
		return
	}

	var req AnalyzeSchemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	if len(req.Schema) == 0 {
		_ = ErrorResponse(w, http.StatusBadRequest, "missing_schema", "schema is required")
		return
	}

	analysis, err := h.agent.AnalyzeSchema(r.Context(), req.Schema)
	if err != nil {
		h.logger.Error("schema analysis failed", zap.Error(err))
		_ = ErrorResponse(w, http.StatusBadGateway, "analysis_failed", "could not analyze schema")
		return
	}

	if err := WriteJSON(w, http.StatusOK, analysis); err != nil {
		h.logger.Error("Failed to encode analysis response", zap.Error(err))
	}
}

// Domains handles GET /api/domains.
func (h *SchemaHandler) Domains(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		_ = ErrorResponse(w, http.StatusMethodNotAllowed, "method_not_allowed", "use GET")
		return
	}

	response := DomainsResponse{Domains: h.agent.SupportedDomains()}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode domains response", zap.Error(err))
	}
}
