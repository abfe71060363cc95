package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denizyilmaz/plansphere/internal/pkg/apperrors"
)

func TestValidateGeneratedScheduleEmbeddedInProse(t *testing.T) {
	raw := `Here is your four-year plan! I focused on your interests.

[{"year":1,"semesters":[{"name":"Fall","courses":[]}]}]

Good luck with your studies.`

	years, err := ValidateGeneratedSchedule(raw)
	require.NoError(t, err)
	require.Len(t, years, 1)
	assert.Equal(t, 1, years[0].Year)
	require.Len(t, years[0].Semesters, 1)
	assert.Equal(t, "Fall", years[0].Semesters[0].Name)
	assert.Empty(t, years[0].Semesters[0].Courses)
}

func TestValidateGeneratedSchedulePrefersFencedBlock(t *testing.T) {
	raw := "Some prose with a stray [ bracket.\n" +
		"```json\n" +
		`[{"year":2,"semesters":[{"name":"Spring","courses":[{"code":"CS 201","title":"Data Structures","credits":4}]}]}]` +
		"\n```\n trailing ] text"

	years, err := ValidateGeneratedSchedule(raw)
	require.NoError(t, err)
	require.Len(t, years, 1)
	assert.Equal(t, 2, years[0].Year)
	require.Len(t, years[0].Semesters[0].Courses, 1)
	assert.Equal(t, "CS 201", years[0].Semesters[0].Courses[0].Code)
	assert.Equal(t, 4, years[0].Semesters[0].Courses[0].Credits)
}

func TestValidateGeneratedScheduleSkipsUntaggedFence(t *testing.T) {
	raw := "Dependencies per semester:\n" +
		"```\n[prerequisites, are, listed, first]\n```\n" +
		"And the plan itself:\n" +
		"```json\n" +
		`[{"year":3,"semesters":[{"name":"Fall","courses":[]}]}]` +
		"\n```\n"

	years, err := ValidateGeneratedSchedule(raw)
	require.NoError(t, err)
	require.Len(t, years, 1)
	assert.Equal(t, 3, years[0].Year)
}

func TestValidateGeneratedScheduleNoArray(t *testing.T) {
	_, err := ValidateGeneratedSchedule("I could not produce a schedule, sorry.")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMalformedOutput)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.RawText, "could not produce")
}

func TestValidateGeneratedScheduleUnparseable(t *testing.T) {
	_, err := ValidateGeneratedSchedule(`[{"year": oops}]`)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "does not parse")
}

func TestValidateGeneratedScheduleStructuralFailures(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		reason string
	}{
		{"missing year number", `[{"semesters":[]}]`, "no year number"},
		{"missing semesters", `[{"year":1}]`, "no semesters"},
		{"missing semester name", `[{"year":1,"semesters":[{"courses":[]}]}]`, "no name"},
		{"missing courses", `[{"year":1,"semesters":[{"name":"Fall"}]}]`, "no courses"},
		{"empty year list", `[]`, "no years"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateGeneratedSchedule(tc.raw)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Reason, tc.reason)
			assert.Equal(t, tc.raw, verr.RawText)
		})
	}
}

func TestExtractScheduleJSONFirstBracketFallback(t *testing.T) {
	raw := `prefix [1, 2, 3] suffix`
	payload, err := ExtractScheduleJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]", payload)
}
