package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/denizyilmaz/plansphere/internal/app/models"
	"github.com/denizyilmaz/plansphere/internal/pkg/genai"
)

// Stage names, in pipeline order.
const (
	StageCatalogStructuring    = "catalog structuring"
	StageRequirementAnalysis   = "requirement analysis"
	StageSpecializationRanking = "specialization ranking"
	StageScheduleSynthesis     = "schedule synthesis"
	StagePresentation          = "presentation"
)

// StageError is a provider failure attributed to one pipeline stage. The
// pipeline aborts at the first failing stage; nothing is retried and no
// partial result survives.
type StageError struct {
	Stage string
	Err   error
}

// Error implements the error interface
func (e *StageError) Error() string {
	return fmt.Sprintf("stage %q failed: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying provider error
func (e *StageError) Unwrap() error {
	return e.Err
}

// PipelineResult is the outcome of one full generation run.
type PipelineResult struct {
	// Raw output of each stage, in order
	StageOutputs []string

	// FinalText is the stage-5 text, returned verbatim to the caller
	FinalText string

	// Years is the validated schedule extracted from FinalText
	Years []models.Year
}

// GenerationService runs the five-stage schedule generation pipeline. A run
// is strictly sequential: each stage is one provider call whose prompt
// embeds the verbatim output of the stage before it. Independent runs share
// nothing and may execute concurrently.
type GenerationService struct {
	provider     genai.TextGenerator
	stageTimeout time.Duration
	logger       zerolog.Logger
}

// NewGenerationService creates a new generation service instance
func NewGenerationService(provider genai.TextGenerator, stageTimeout time.Duration, logger zerolog.Logger) *GenerationService {
	return &GenerationService{
		provider:     provider,
		stageTimeout: stageTimeout,
		logger:       logger,
	}
}

// Run executes the pipeline for one catalog and preference. On success the
// final stage's text has been validated into a schedule; on failure the
// error names the failing stage (provider errors) or carries the raw text
// (validation errors), and no schedule is produced.
func (g *GenerationService) Run(ctx context.Context, catalogJSON, preference string) (*PipelineResult, error) {
	result := &PipelineResult{}

	structured, err := g.runStage(ctx, StageCatalogStructuring, catalogStructuringPrompt(catalogJSON))
	if err != nil {
		return nil, err
	}
	result.StageOutputs = append(result.StageOutputs, structured)

	requirements, err := g.runStage(ctx, StageRequirementAnalysis, requirementAnalysisPrompt(structured))
	if err != nil {
		return nil, err
	}
	result.StageOutputs = append(result.StageOutputs, requirements)

	ranking, err := g.runStage(ctx, StageSpecializationRanking, specializationRankingPrompt(structured, preference))
	if err != nil {
		return nil, err
	}
	result.StageOutputs = append(result.StageOutputs, ranking)

	draft, err := g.runStage(ctx, StageScheduleSynthesis, scheduleSynthesisPrompt(structured, requirements, ranking, preference))
	if err != nil {
		return nil, err
	}
	result.StageOutputs = append(result.StageOutputs, draft)

	final, err := g.runStage(ctx, StagePresentation, presentationPrompt(draft))
	if err != nil {
		return nil, err
	}
	result.StageOutputs = append(result.StageOutputs, final)
	result.FinalText = final

	years, err := ValidateGeneratedSchedule(final)
	if err != nil {
		g.logger.Warn().
			Err(err).
			Msg("Generated schedule failed validation")
		return nil, err
	}
	result.Years = years

	return result, nil
}

// runStage performs one provider call under the per-stage timeout.
func (g *GenerationService) runStage(ctx context.Context, stage, prompt string) (string, error) {
	stageCtx := ctx
	if g.stageTimeout > 0 {
		var cancel context.CancelFunc
		stageCtx, cancel = context.WithTimeout(ctx, g.stageTimeout)
		defer cancel()
	}

	started := time.Now()
	out, err := g.provider.Generate(stageCtx, prompt)
	if err != nil {
		g.logger.Error().
			Err(err).
			Str("stage", stage).
			Dur("elapsed", time.Since(started)).
			Msg("Pipeline stage failed")
		return "", &StageError{Stage: stage, Err: err}
	}

	g.logger.Debug().
		Str("stage", stage).
		Dur("elapsed", time.Since(started)).
		Int("outputLen", len(out)).
		Msg("Pipeline stage completed")

	return out, nil
}
