package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denizyilmaz/plansphere/internal/app/models"
	"github.com/denizyilmaz/plansphere/internal/app/repositories"
)

type fakeScheduleStore struct {
	saved   map[string]*models.Schedule
	saveErr error
}

func newFakeScheduleStore() *fakeScheduleStore {
	return &fakeScheduleStore{saved: make(map[string]*models.Schedule)}
}

func (f *fakeScheduleStore) Load(_ context.Context, ownerEmail string) (*models.Schedule, error) {
	schedule, ok := f.saved[ownerEmail]
	if !ok {
		return nil, repositories.ErrScheduleNotFound
	}
	return schedule.Clone(), nil
}

func (f *fakeScheduleStore) Save(_ context.Context, ownerEmail string, schedule *models.Schedule) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved[ownerEmail] = schedule.Clone()
	return nil
}

type fakeUserStore struct {
	known map[string]bool
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if !f.known[email] {
		return nil, repositories.ErrUserNotFound
	}
	return &models.User{Email: email}, nil
}

const owner = "deniz@example.edu"

func newTestScheduleService(store *fakeScheduleStore) *ScheduleService {
	users := &fakeUserStore{known: map[string]bool{owner: true}}
	return NewScheduleService(store, users, zerolog.Nop())
}

func TestGetOrCreateCreatesEmptySchedule(t *testing.T) {
	store := newFakeScheduleStore()
	svc := newTestScheduleService(store)

	schedule, err := svc.GetOrCreate(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, owner, schedule.OwnerEmail)
	assert.Len(t, schedule.Years, models.YearsPerPlan)

	// The fresh schedule is persisted immediately.
	require.Contains(t, store.saved, owner)
}

func TestGetOrCreateUnknownOwner(t *testing.T) {
	svc := newTestScheduleService(newFakeScheduleStore())

	_, err := svc.GetOrCreate(context.Background(), "stranger@example.edu")
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestMovePersistsResult(t *testing.T) {
	store := newFakeScheduleStore()
	svc := newTestScheduleService(store)

	_, _, err := svc.AddCourses(context.Background(), owner, []models.Course{
		{Code: "CS 101", Title: "Intro", Credits: 4},
	})
	require.NoError(t, err)

	moved, err := svc.Move(context.Background(), owner, 0, 0, 0, 1, 2, 0, false)
	require.NoError(t, err)
	assert.Empty(t, moved.Years[0].Semesters[0].Courses)
	require.Len(t, moved.Years[1].Semesters[2].Courses, 1)
	assert.Equal(t, "CS 101", moved.Years[1].Semesters[2].Courses[0].Code)

	reloaded, err := svc.GetOrCreate(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, moved, reloaded)
}

func TestMoveDiscardRemoves(t *testing.T) {
	store := newFakeScheduleStore()
	svc := newTestScheduleService(store)

	_, _, err := svc.AddCourses(context.Background(), owner, []models.Course{
		{Code: "CS 101", Title: "Intro", Credits: 4},
	})
	require.NoError(t, err)

	after, err := svc.Move(context.Background(), owner, 0, 0, 0, 0, 0, 0, true)
	require.NoError(t, err)
	assert.Empty(t, after.Years[0].Semesters[0].Courses)
}

func TestPersistFailureKeepsInMemoryResult(t *testing.T) {
	store := newFakeScheduleStore()
	svc := newTestScheduleService(store)

	_, _, err := svc.AddCourses(context.Background(), owner, []models.Course{
		{Code: "CS 101", Title: "Intro", Credits: 4},
	})
	require.NoError(t, err)

	store.saveErr = errors.New("connection reset")

	removed, err := svc.Remove(context.Background(), owner, 0, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, removed.Years[0].Semesters[0].Courses)

	// The store keeps its last successfully saved state.
	store.saveErr = nil
	reloaded, err := svc.GetOrCreate(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, reloaded.Years[0].Semesters[0].Courses, 1)
}

func TestAddCoursesReportsUnplaced(t *testing.T) {
	svc := newTestScheduleService(newFakeScheduleStore())

	capacity := models.YearsPerPlan * models.SemestersPerYear * models.SemesterCapacity
	courses := make([]models.Course, capacity+3)
	for i := range courses {
		courses[i] = models.Course{Code: code(i), Title: "Filler", Credits: 3}
	}

	schedule, unplaced, err := svc.AddCourses(context.Background(), owner, courses)
	require.NoError(t, err)
	assert.Equal(t, 3, unplaced)
	for _, year := range schedule.Years {
		for _, sem := range year.Semesters {
			assert.Len(t, sem.Courses, models.SemesterCapacity)
		}
	}
}

func TestReplaceRejectsInvalidPlan(t *testing.T) {
	store := newFakeScheduleStore()
	svc := newTestScheduleService(store)

	_, err := svc.Replace(context.Background(), owner, []models.Year{
		{Year: 7, Semesters: []models.Semester{}},
	})
	require.Error(t, err)
	assert.NotContains(t, store.saved, owner)
}

func TestReplaceInstallsGeneratedPlan(t *testing.T) {
	store := newFakeScheduleStore()
	svc := newTestScheduleService(store)

	replaced, err := svc.Replace(context.Background(), owner, []models.Year{
		{Year: 1, Semesters: []models.Semester{
			{Name: "Fall", Courses: []models.ScheduledCourse{
				{Course: models.Course{Code: "CS 101", Title: "Intro", Credits: 4}},
			}},
		}},
	})
	require.NoError(t, err)
	assert.Len(t, replaced.Years, models.YearsPerPlan)
	require.Len(t, replaced.Years[0].Semesters[0].Courses, 1)
	assert.NotEmpty(t, replaced.Years[0].Semesters[0].Courses[0].PlacementID)

	require.Contains(t, store.saved, owner)
}

func TestIsPlaced(t *testing.T) {
	svc := newTestScheduleService(newFakeScheduleStore())

	_, _, err := svc.AddCourses(context.Background(), owner, []models.Course{
		{Code: "CS 101", Title: "Intro", Credits: 4},
	})
	require.NoError(t, err)

	placed, err := svc.IsPlaced(context.Background(), owner, "CS 101")
	require.NoError(t, err)
	assert.True(t, placed)

	placed, err = svc.IsPlaced(context.Background(), owner, "CS 999")
	require.NoError(t, err)
	assert.False(t, placed)
}

func code(i int) string {
	return "CRS " + string(rune('A'+i/26)) + string(rune('A'+i%26))
}
