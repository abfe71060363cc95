package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/denizyilmaz/plansphere/internal/app/models"
	"github.com/denizyilmaz/plansphere/internal/pkg/apperrors"
)

// ValidationError reports why generated text was rejected, keeping the raw
// text for diagnostics. Generated output is never silently replaced with a
// default schedule.
type ValidationError struct {
	Reason  string
	RawText string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("generated schedule rejected: %s", e.Reason)
}

// Unwrap lets callers match apperrors.ErrMalformedOutput
func (e *ValidationError) Unwrap() error {
	return apperrors.ErrMalformedOutput
}

// fencedJSON matches a fence explicitly tagged ```json and containing a
// JSON array. Untagged fences are not trusted; providers put prose and other
// snippets in those, and a loose match could grab the wrong block.
var fencedJSON = regexp.MustCompile("(?s)```json\\s*(\\[.*?\\])\\s*```")

// ExtractScheduleJSON locates the schedule JSON array embedded in generated
// text. The supported convention is a fenced ```json code block; when no
// tagged fence is present it falls back to the span from the first '[' to
// the last ']' of the document. Anything else is rejected.
func ExtractScheduleJSON(raw string) (string, error) {
	if matches := fencedJSON.FindStringSubmatch(raw); len(matches) > 1 {
		return strings.TrimSpace(matches[1]), nil
	}

	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return "", &ValidationError{
			Reason:  "no JSON array found in generated text",
			RawText: raw,
		}
	}

	return raw[start : end+1], nil
}

// Loose shapes for the untrusted provider output. Pointer fields distinguish
// a missing key from a zero value.
type looseCourse struct {
	Code        string   `json:"code"`
	Title       string   `json:"title"`
	Credits     float64  `json:"credits"`
	Description string   `json:"description"`
	PlacementID string   `json:"placementId"`
	Attributes  []string `json:"attributes"`
}

type looseSemester struct {
	Name    *string        `json:"name"`
	Courses *[]looseCourse `json:"courses"`
}

type looseYear struct {
	Year      *float64         `json:"year"`
	Semesters *[]looseSemester `json:"semesters"`
}

// ValidateGeneratedSchedule extracts and validates a schedule from raw
// generated text. The provider's output is untrusted: it is parsed into a
// loose intermediate shape, structurally checked, and only then converted
// into the strict model types. The loose shape never leaves this function.
func ValidateGeneratedSchedule(raw string) ([]models.Year, error) {
	payload, err := ExtractScheduleJSON(raw)
	if err != nil {
		return nil, err
	}

	var loose []looseYear
	if err := json.Unmarshal([]byte(payload), &loose); err != nil {
		return nil, &ValidationError{
			Reason:  fmt.Sprintf("embedded JSON does not parse as a year array: %v", err),
			RawText: raw,
		}
	}

	if len(loose) == 0 {
		return nil, &ValidationError{
			Reason:  "embedded JSON contains no years",
			RawText: raw,
		}
	}

	years := make([]models.Year, 0, len(loose))
	for yi, ly := range loose {
		if ly.Year == nil {
			return nil, &ValidationError{
				Reason:  fmt.Sprintf("year at position %d has no year number", yi),
				RawText: raw,
			}
		}
		if ly.Semesters == nil {
			return nil, &ValidationError{
				Reason:  fmt.Sprintf("year %d has no semesters field", int(*ly.Year)),
				RawText: raw,
			}
		}

		year := models.Year{Year: int(*ly.Year)}
		for si, ls := range *ly.Semesters {
			if ls.Name == nil {
				return nil, &ValidationError{
					Reason:  fmt.Sprintf("semester at position %d of year %d has no name", si, year.Year),
					RawText: raw,
				}
			}
			if ls.Courses == nil {
				return nil, &ValidationError{
					Reason:  fmt.Sprintf("semester %q of year %d has no courses field", *ls.Name, year.Year),
					RawText: raw,
				}
			}

			sem := models.Semester{Name: *ls.Name, Courses: []models.ScheduledCourse{}}
			for _, lc := range *ls.Courses {
				sem.Courses = append(sem.Courses, models.ScheduledCourse{
					PlacementID: lc.PlacementID,
					Course: models.Course{
						Code:        lc.Code,
						Title:       lc.Title,
						Credits:     int(lc.Credits),
						Description: lc.Description,
						Attributes:  lc.Attributes,
					},
				})
			}
			year.Semesters = append(year.Semesters, sem)
		}
		years = append(years, year)
	}

	return years, nil
}
