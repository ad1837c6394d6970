package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/askdb-ai/askdb-engine/pkg/models"
	"github.com/askdb-ai/askdb-engine/pkg/services"
)

func doAsk(t *testing.T, agent *stubAgent, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewAskHandler(agent, nil, zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Ask(rec, req)
	return rec
}

func TestAskSuccess(t *testing.T) {
	agent := &stubAgent{
		ProcessFunc: func(_ context.Context, _ string, _ models.Schema, _ services.QueryExecutorFunc) *models.Result {
			return &models.Result{
				Success:        true,
				Domain:         models.DomainRetail,
				GeneratedQuery: "SELECT 1",
				ChartType:      models.ChartBar,
			}
		},
	}

	rec := doAsk(t, agent, `{
		"prompt": "top 5 products",
		"schema": {"sales": ["product", "amount"]}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.True(t, result.Success)
	assert.Equal(t, models.DomainRetail, result.Domain)
	assert.Equal(t, "SELECT 1", result.GeneratedQuery)

	assert.Equal(t, 1, agent.ProcessCalls)
	assert.Equal(t, "top 5 products", agent.LastPrompt)
	require.Len(t, agent.LastSchema, 1)
	assert.Equal(t, "sales", agent.LastSchema[0].Name)
	// Execution was not requested, so no executor callback is passed.
	assert.Nil(t, agent.LastExecute)
}

func TestAskRejectsWrongMethod(t *testing.T) {
	handler := NewAskHandler(&stubAgent{}, nil, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/api/ask", nil)
	rec := httptest.NewRecorder()

	handler.Ask(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAskValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"malformed body", `{not json`, "invalid_request"},
		{"missing prompt", `{"schema": {"t": ["c"]}}`, "missing_prompt"},
		{"missing schema without database", `{"prompt": "hi"}`, "missing_schema"},
		{"execute without database", `{"prompt": "hi", "schema": {"t": ["c"]}, "execute": true}`, "execution_unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doAsk(t, &stubAgent{}, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body["error"])
		})
	}
}

func TestAskPreservesSchemaOrder(t *testing.T) {
	agent := &stubAgent{}

	rec := doAsk(t, agent, `{
		"prompt": "anything",
		"schema": {"zebra": ["z"], "alpha": ["a"], "mango": ["m"]}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, agent.LastSchema, 3)
	// Declaration order from the JSON body, not alphabetical.
	assert.Equal(t, "zebra", agent.LastSchema[0].Name)
	assert.Equal(t, "alpha", agent.LastSchema[1].Name)
	assert.Equal(t, "mango", agent.LastSchema[2].Name)
}
