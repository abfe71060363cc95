package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Plan layout constants. Every schedule is exactly four years of four
// semesters, and a semester never holds more than five courses.
const (
	YearsPerPlan     = 4
	SemestersPerYear = 4
	SemesterCapacity = 5
)

// SemesterNames is the fixed cyclical order of semesters within a year.
var SemesterNames = [SemestersPerYear]string{"Fall", "Spring", "Summer 1", "Summer 2"}

// Placement errors returned by the schedule operations
var (
	ErrSemesterFull    = errors.New("semester is at capacity")
	ErrInvalidSlot     = errors.New("invalid schedule slot")
	ErrDuplicateCourse = errors.New("course is already placed in the schedule")
	ErrInvalidPlan     = errors.New("invalid plan structure")
)

// ScheduledCourse is a catalog course placed into a schedule. The placement
// ID addresses this particular placement (for drag-and-drop); the course
// code stays the identity for duplicate checks.
type ScheduledCourse struct {
	PlacementID string `json:"placementId"`
	Course
}

// Semester holds an ordered list of placed courses. Order matters only for
// display.
type Semester struct {
	Name    string            `json:"name"`
	Courses []ScheduledCourse `json:"courses"`
}

// Year is one academic year of the plan, numbered 1..4.
type Year struct {
	Year      int        `json:"year"`
	Semesters []Semester `json:"semesters"`
}

// Schedule is a four-year course plan owned by a single user. All mutations
// go through the operations in this package so the capacity and
// no-duplicate invariants are enforced in exactly one place.
type Schedule struct {
	OwnerEmail string `json:"ownerEmail"`
	Years      []Year `json:"years"`
}

// NewEmptySchedule builds the empty 4x4 plan skeleton for an owner.
func NewEmptySchedule(ownerEmail string) *Schedule {
	s := &Schedule{OwnerEmail: ownerEmail, Years: make([]Year, YearsPerPlan)}
	for yi := range s.Years {
		s.Years[yi].Year = yi + 1
		s.Years[yi].Semesters = make([]Semester, SemestersPerYear)
		for si := range s.Years[yi].Semesters {
			s.Years[yi].Semesters[si].Name = SemesterNames[si]
			s.Years[yi].Semesters[si].Courses = []ScheduledCourse{}
		}
	}
	return s
}

// Clone returns a deep copy of the schedule.
func (s *Schedule) Clone() *Schedule {
	out := &Schedule{OwnerEmail: s.OwnerEmail, Years: make([]Year, len(s.Years))}
	for yi, year := range s.Years {
		out.Years[yi].Year = year.Year
		out.Years[yi].Semesters = make([]Semester, len(year.Semesters))
		for si, sem := range year.Semesters {
			courses := make([]ScheduledCourse, len(sem.Courses))
			copy(courses, sem.Courses)
			out.Years[yi].Semesters[si] = Semester{Name: sem.Name, Courses: courses}
		}
	}
	return out
}

// semesterAt resolves a year/semester pair, both zero-based.
func (s *Schedule) semesterAt(year, semester int) (*Semester, error) {
	if year < 0 || year >= len(s.Years) {
		return nil, fmt.Errorf("%w: year index %d", ErrInvalidSlot, year)
	}
	if semester < 0 || semester >= len(s.Years[year].Semesters) {
		return nil, fmt.Errorf("%w: semester index %d", ErrInvalidSlot, semester)
	}
	return &s.Years[year].Semesters[semester], nil
}

// MoveCourse relocates a placement from one slot to another and returns the
// resulting schedule. Moving to the exact same slot is a no-op. A move into
// a different semester that already holds the maximum number of courses is
// rejected; reordering within the same semester is always allowed since the
// count does not change.
func MoveCourse(s *Schedule, srcYear, srcSemester, srcIndex, dstYear, dstSemester, dstIndex int) (*Schedule, error) {
	out := s.Clone()

	src, err := out.semesterAt(srcYear, srcSemester)
	if err != nil {
		return nil, err
	}
	if srcIndex < 0 || srcIndex >= len(src.Courses) {
		return nil, fmt.Errorf("%w: source index %d", ErrInvalidSlot, srcIndex)
	}

	if srcYear == dstYear && srcSemester == dstSemester && srcIndex == dstIndex {
		return out, nil
	}

	dst, err := out.semesterAt(dstYear, dstSemester)
	if err != nil {
		return nil, err
	}

	sameSemester := srcYear == dstYear && srcSemester == dstSemester
	if !sameSemester && len(dst.Courses) >= SemesterCapacity {
		return nil, ErrSemesterFull
	}

	course := src.Courses[srcIndex]
	src.Courses = append(src.Courses[:srcIndex], src.Courses[srcIndex+1:]...)

	if dstIndex < 0 {
		dstIndex = 0
	}
	if dstIndex > len(dst.Courses) {
		dstIndex = len(dst.Courses)
	}
	dst.Courses = append(dst.Courses, ScheduledCourse{})
	copy(dst.Courses[dstIndex+1:], dst.Courses[dstIndex:])
	dst.Courses[dstIndex] = course

	return out, nil
}

// RemoveCourse drops the placement at the given slot.
func RemoveCourse(s *Schedule, year, semester, index int) (*Schedule, error) {
	out := s.Clone()

	sem, err := out.semesterAt(year, semester)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(sem.Courses) {
		return nil, fmt.Errorf("%w: course index %d", ErrInvalidSlot, index)
	}

	sem.Courses = append(sem.Courses[:index], sem.Courses[index+1:]...)
	return out, nil
}

// AddCourses greedily places courses starting at year 1, Fall, filling each
// semester up to capacity before advancing. Courses whose code is already
// placed anywhere in the schedule are skipped silently. Once every semester
// slot is exhausted the remaining courses are returned unplaced. This is a
// deliberate first-fit policy: it ignores prerequisites and balance.
func AddCourses(s *Schedule, courses []Course) (*Schedule, []Course) {
	out := s.Clone()

	placed := make(map[string]bool)
	for _, year := range out.Years {
		for _, sem := range year.Semesters {
			for _, c := range sem.Courses {
				placed[c.Code] = true
			}
		}
	}

	yi, si := 0, 0
	var unplaced []Course
	for _, course := range courses {
		if placed[course.Code] {
			continue
		}

		// Advance to the next semester with room.
		for yi < len(out.Years) && len(out.Years[yi].Semesters[si].Courses) >= SemesterCapacity {
			si++
			if si >= len(out.Years[yi].Semesters) {
				si = 0
				yi++
			}
		}
		if yi >= len(out.Years) {
			unplaced = append(unplaced, course)
			continue
		}

		sem := &out.Years[yi].Semesters[si]
		sem.Courses = append(sem.Courses, ScheduledCourse{
			PlacementID: uuid.NewString(),
			Course:      course,
		})
		placed[course.Code] = true
	}

	return out, unplaced
}

// IsPlaced reports whether a course code appears anywhere in the schedule.
func IsPlaced(s *Schedule, code string) bool {
	for _, year := range s.Years {
		for _, sem := range year.Semesters {
			for _, c := range sem.Courses {
				if c.Code == code {
					return true
				}
			}
		}
	}
	return false
}

// FromYears builds a full schedule from a partial list of years, padding
// missing years and semesters with empty ones. Placement IDs are assigned
// where absent. The placement invariants are enforced: a semester over
// capacity or a course code appearing twice makes the whole plan invalid.
func FromYears(ownerEmail string, years []Year) (*Schedule, error) {
	out := NewEmptySchedule(ownerEmail)
	seenYears := make(map[int]bool)
	seenCodes := make(map[string]bool)

	for _, year := range years {
		if year.Year < 1 || year.Year > YearsPerPlan {
			return nil, fmt.Errorf("%w: year number %d out of range", ErrInvalidPlan, year.Year)
		}
		if seenYears[year.Year] {
			return nil, fmt.Errorf("%w: year %d appears twice", ErrInvalidPlan, year.Year)
		}
		seenYears[year.Year] = true

		if len(year.Semesters) > SemestersPerYear {
			return nil, fmt.Errorf("%w: year %d has %d semesters", ErrInvalidPlan, year.Year, len(year.Semesters))
		}

		for si, sem := range year.Semesters {
			if len(sem.Courses) > SemesterCapacity {
				return nil, fmt.Errorf("%w: %q in year %d holds %d courses", ErrSemesterFull, sem.Name, year.Year, len(sem.Courses))
			}
			target := &out.Years[year.Year-1].Semesters[si]
			for _, c := range sem.Courses {
				if seenCodes[c.Code] {
					return nil, fmt.Errorf("%w: %s", ErrDuplicateCourse, c.Code)
				}
				seenCodes[c.Code] = true
				if c.PlacementID == "" {
					c.PlacementID = uuid.NewString()
				}
				target.Courses = append(target.Courses, c)
			}
		}
	}

	return out, nil
}
