package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/askdb-ai/askdb-engine/pkg/models"
)

// Schema analysis recommendation bands.
const (
	strongMatchThreshold   = 0.7
	moderateMatchThreshold = 0.4
)

// QueryExecutorFunc runs a generated query and returns its rows. Passing
// nil skips execution; the pipeline then answers from the query alone.
type QueryExecutorFunc func(ctx context.Context, query string) (*models.ResultSet, error)

// Agent is the full pipeline: classify, generate SQL, optionally execute,
// answer, and pick a chart.
type Agent interface {
	Process(ctx context.Context, prompt string, schema models.Schema, execute QueryExecutorFunc) *models.Result
	AnalyzeSchema(ctx context.Context, schema models.Schema) (*models.SchemaAnalysis, error)
	SupportedDomains() []models.Domain
}

type agent struct {
	domains    DomainDetector
	intents    IntentClassifier
	entities   EntityExtractor
	queries    QueryGenerator
	responses  ResponseGenerator
	charts     ChartSelector
	signatures []models.DomainSignature
	logger     *zap.Logger
}

// NewAgent wires the pipeline stages together.
func NewAgent(
	domains DomainDetector,
	intents IntentClassifier,
	entities EntityExtractor,
	queries QueryGenerator,
	responses ResponseGenerator,
	charts ChartSelector,
	signatures []models.DomainSignature,
	logger *zap.Logger,
) Agent {
	return &agent{
		domains:    domains,
		intents:    intents,
		entities:   entities,
		queries:    queries,
		responses:  responses,
		charts:     charts,
		signatures: signatures,
		logger:     logger,
	}
}

// Process implements Agent. It never returns an error: every failure mode
// is folded into the Result so callers always get a serializable outcome.
func (a *agent) Process(ctx context.Context, prompt string, schema models.Schema, execute QueryExecutorFunc) (result *models.Result) {
	requestID := uuid.New()

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("pipeline panic",
				zap.String("request_id", requestID.String()),
				zap.Any("panic", r))
			result = &models.Result{
				RequestID: requestID,
				Success:   false,
				Domain:    models.DomainUnknown,
				ChartType: models.ChartNone,
				Error:     fmt.Sprintf("internal error: %v", r),
			}
		}
	}()

	a.logger.Info("processing prompt",
		zap.String("request_id", requestID.String()),
		zap.Int("prompt_length", len(prompt)),
		zap.Int("tables", len(schema)))

	cls, err := a.classify(ctx, prompt, schema)
	if err != nil {
		return &models.Result{
			RequestID: requestID,
			Success:   false,
			Domain:    models.DomainUnknown,
			ChartType: models.ChartNone,
			Error:     err.Error(),
		}
	}

	result = &models.Result{
		RequestID:        requestID,
		Success:          true,
		Domain:           cls.Domain,
		DomainConfidence: cls.DomainConfidence,
		DomainScores:     cls.DomainScores,
		Intent:           cls.Intent,
		Entities:         cls.Entities,
		ChartType:        models.ChartNone,
	}

	query, err := a.queries.Generate(ctx, prompt, cls, schema)
	if err != nil {
		result.Success = false
		result.Error = err.Error()
		return result
	}
	result.GeneratedQuery = query

	var rows *models.ResultSet
	if execute != nil {
		rows, err = execute(ctx, query)
		if err != nil {
			// The query survives so the caller can inspect or rerun it.
			result.Success = false
			result.Error = fmt.Sprintf("query execution failed: %v", err)
			result.Response = fmt.Sprintf("I generated a SQL query but couldn't execute it: %v", err)
			return result
		}
		result.Results = rows
	}

	answer, err := a.responses.Generate(ctx, prompt, rows, cls.Intent.Intent)
	if err != nil {
		result.Success = false
		result.Error = err.Error()
		return result
	}
	result.Response = answer

	if rows != nil {
		decision := a.charts.Select(rows, prompt, cls.Intent.Intent, cls.Domain)
		result.Chart = decision
		result.ChartType = decision.ChartType
	}

	a.logger.Info("prompt processed",
		zap.String("request_id", requestID.String()),
		zap.String("domain", string(result.Domain)),
		zap.String("chart_type", string(result.ChartType)))

	return result
}

// classify runs the three provider-independent stages plus domain
// detection and bundles their outputs.
func (a *agent) classify(ctx context.Context, prompt string, schema models.Schema) (*models.Classification, error) {
	detection, err := a.domains.Detect(ctx, schema)
	if err != nil {
		return nil, fmt.Errorf("domain detection: %w", err)
	}

	intent, err := a.intents.Classify(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("intent classification: %w", err)
	}

	return &models.Classification{
		Domain:           detection.Domain,
		DomainConfidence: detection.Confidence,
		DomainScores:     detection.AllScores,
		Intent:           intent,
		Entities:         a.entities.Extract(prompt),
	}, nil
}

// AnalyzeSchema implements Agent. It reports the detected domain without
// generating or running any SQL.
func (a *agent) AnalyzeSchema(ctx context.Context, schema models.Schema) (*models.SchemaAnalysis, error) {
	detection, err := a.domains.Detect(ctx, schema)
	if err != nil {
		return nil, err
	}

	return &models.SchemaAnalysis{
		DetectedDomain: detection.Domain,
		Confidence:     detection.Confidence,
		AllScores:      detection.AllScores,
		Tables:         schema.TableNames(),
		TotalColumns:   schema.TotalColumns(),
		Recommendation: recommendation(detection.Domain, detection.Confidence),
	}, nil
}

// SupportedDomains implements Agent. Order follows the signature table.
func (a *agent) SupportedDomains() []models.Domain {
	out := make([]models.Domain, 0, len(a.signatures))
	for _, sig := range a.signatures {
		out = append(out, sig.Name)
	}
	return out
}

// recommendation maps confidence to a band. Boundaries are exclusive:
// exactly 0.7 is still a moderate match, exactly 0.4 still weak.
func recommendation(domain models.Domain, confidence float64) string {
	switch {
	case confidence > strongMatchThreshold:
		return fmt.Sprintf("Strong match: schema clearly belongs to the %s domain.", domain)
	case confidence > moderateMatchThreshold:
		return fmt.Sprintf("Moderate match: schema resembles the %s domain; verify before relying on domain-specific guidance.", domain)
	default:
		return "Weak match: no domain fits well; generic SQL guidance will be used."
	}
}
