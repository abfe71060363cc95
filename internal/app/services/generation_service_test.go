package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider replays canned responses and records every prompt it sees.
type stubProvider struct {
	responses []string
	prompts   []string
	failAt    int // 1-based stage number to fail at, 0 for never
	err       error
}

func (s *stubProvider) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	call := len(s.prompts)
	if s.failAt != 0 && call == s.failAt {
		return "", s.err
	}
	if call <= len(s.responses) {
		return s.responses[call-1], nil
	}
	return "", errors.New("stub exhausted")
}

const finalAnswer = "Here is your plan!\n```json\n" +
	`[{"year":1,"semesters":[{"name":"Fall","courses":[{"code":"CS 101","title":"Intro to Programming","credits":4},{"code":"MATH 120","title":"Calculus I","credits":4}]}]}]` +
	"\n```"

func TestRunExecutesStagesInOrder(t *testing.T) {
	provider := &stubProvider{
		responses: []string{"structured", "requirements", "ranking", "draft", finalAnswer},
	}
	svc := NewGenerationService(provider, time.Minute, zerolog.Nop())

	result, err := svc.Run(context.Background(), `{"departments":[]}`, "Computer Science")
	require.NoError(t, err)
	require.Len(t, provider.prompts, 5)
	require.Len(t, result.StageOutputs, 5)
	assert.Equal(t, finalAnswer, result.FinalText)

	// Stage 1 sees the raw catalog, every later stage embeds its inputs verbatim.
	assert.Contains(t, provider.prompts[0], `{"departments":[]}`)
	assert.Contains(t, provider.prompts[1], "structured")
	assert.Contains(t, provider.prompts[2], "structured")
	assert.Contains(t, provider.prompts[2], "Computer Science")
	assert.Contains(t, provider.prompts[3], "structured")
	assert.Contains(t, provider.prompts[3], "requirements")
	assert.Contains(t, provider.prompts[3], "ranking")
	assert.Contains(t, provider.prompts[4], "draft")
}

func TestRunValidatesFinalStage(t *testing.T) {
	provider := &stubProvider{
		responses: []string{"structured", "requirements", "ranking", "draft", finalAnswer},
	}
	svc := NewGenerationService(provider, time.Minute, zerolog.Nop())

	result, err := svc.Run(context.Background(), "{}", "Computer Science")
	require.NoError(t, err)
	require.Len(t, result.Years, 1)
	require.Len(t, result.Years[0].Semesters, 1)
	courses := result.Years[0].Semesters[0].Courses
	require.Len(t, courses, 2)
	assert.Equal(t, "CS 101", courses[0].Code)
	assert.Equal(t, "MATH 120", courses[1].Code)
}

func TestRunAbortsOnFirstFailure(t *testing.T) {
	providerErr := errors.New("model overloaded")
	provider := &stubProvider{
		responses: []string{"structured"},
		failAt:    2,
		err:       providerErr,
	}
	svc := NewGenerationService(provider, time.Minute, zerolog.Nop())

	_, err := svc.Run(context.Background(), "{}", "Biology")
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageRequirementAnalysis, stageErr.Stage)
	assert.ErrorIs(t, err, providerErr)

	// No stages run after the failure.
	assert.Len(t, provider.prompts, 2)
}

func TestRunRejectsMalformedFinalStage(t *testing.T) {
	provider := &stubProvider{
		responses: []string{"structured", "requirements", "ranking", "draft", "no schedule here"},
	}
	svc := NewGenerationService(provider, time.Minute, zerolog.Nop())

	_, err := svc.Run(context.Background(), "{}", "Physics")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "no schedule here", verr.RawText)
}

func TestRunStageTimeout(t *testing.T) {
	slow := generateFunc(func(ctx context.Context, _ string) (string, error) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(5 * time.Second):
			return "too late", nil
		}
	})
	svc := NewGenerationService(slow, 20*time.Millisecond, zerolog.Nop())

	_, err := svc.Run(context.Background(), "{}", "History")
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageCatalogStructuring, stageErr.Stage)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// generateFunc adapts a function to the provider interface.
type generateFunc func(ctx context.Context, prompt string) (string, error)

func (f generateFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
