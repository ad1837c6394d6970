package handlers

import (
	"context"

	"github.com/askdb-ai/askdb-engine/pkg/models"
	"github.com/askdb-ai/askdb-engine/pkg/services"
)

// stubAgent is a configurable services.Agent for handler tests.
type stubAgent struct {
	ProcessFunc       func(ctx context.Context, prompt string, schema models.Schema, execute services.QueryExecutorFunc) *models.Result
	AnalyzeSchemaFunc func(ctx context.Context, schema models.Schema) (*models.SchemaAnalysis, error)
	Domains           []models.Domain

	ProcessCalls int
	LastPrompt   string
	LastSchema   models.Schema
	LastExecute  services.QueryExecutorFunc
}

func (s *stubAgent) Process(ctx context.Context, prompt string, schema models.Schema, execute services.QueryExecutorFunc) *models.Result {
	s.ProcessCalls++
	s.LastPrompt = prompt
	s.LastSchema = schema
	s.LastExecute = execute
	if s.ProcessFunc != nil {
		return s.ProcessFunc(ctx, prompt, schema, execute)
	}
	return &models.Result{Success: true, Domain: models.DomainGeneral, ChartType: models.ChartNone}
}

func (s *stubAgent) AnalyzeSchema(ctx context.Context, schema models.Schema) (*models.SchemaAnalysis, error) {
	if s.AnalyzeSchemaFunc != nil {
		return s.AnalyzeSchemaFunc(ctx, schema)
	}
	return &models.SchemaAnalysis{DetectedDomain: models.DomainGeneral}, nil
}

func (s *stubAgent) SupportedDomains() []models.Domain {
	return s.Domains
}

var _ services.Agent = (*stubAgent)(nil)
