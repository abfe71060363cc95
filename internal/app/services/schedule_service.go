package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/denizyilmaz/plansphere/internal/app/models"
	"github.com/denizyilmaz/plansphere/internal/app/repositories"
)

// Common schedule errors
var (
	ErrOwnerNotFound = errors.New("schedule owner not found")
)

// ScheduleStore persists schedule documents. Load returns
// repositories.ErrScheduleNotFound when the owner has no stored schedule.
type ScheduleStore interface {
	Load(ctx context.Context, ownerEmail string) (*models.Schedule, error)
	Save(ctx context.Context, ownerEmail string, schedule *models.Schedule) error
}

// UserStore resolves schedule owners in the external user records.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// ScheduleService is the single mutation path for schedules. Every accepted
// mutation is persisted immediately; a failed persist is logged and the
// in-memory result is still returned, so the caller sees the edit and the
// store simply holds the last successfully saved state. Concurrent editors
// of the same schedule resolve last-write-wins, mirroring the collaboration
// broker's last-broadcast-wins policy.
type ScheduleService struct {
	store  ScheduleStore
	users  UserStore
	logger zerolog.Logger
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(store ScheduleStore, users UserStore, logger zerolog.Logger) *ScheduleService {
	return &ScheduleService{
		store:  store,
		users:  users,
		logger: logger,
	}
}

// GetOrCreate loads the owner's schedule, creating and persisting an empty
// one the first time a known user is seen without a stored schedule.
func (s *ScheduleService) GetOrCreate(ctx context.Context, ownerEmail string) (*models.Schedule, error) {
	if _, err := s.users.GetByEmail(ctx, ownerEmail); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("error resolving schedule owner: %w", err)
	}

	schedule, err := s.store.Load(ctx, ownerEmail)
	if err != nil {
		if errors.Is(err, repositories.ErrScheduleNotFound) {
			schedule = models.NewEmptySchedule(ownerEmail)
			s.persist(ctx, ownerEmail, schedule)
			return schedule, nil
		}
		return nil, fmt.Errorf("error loading schedule: %w", err)
	}

	return schedule, nil
}

// Move relocates one placement. A move that ends outside any valid semester
// target (discard=true) removes the placement instead.
func (s *ScheduleService) Move(ctx context.Context, ownerEmail string, srcYear, srcSemester, srcIndex, dstYear, dstSemester, dstIndex int, discard bool) (*models.Schedule, error) {
	if discard {
		return s.Remove(ctx, ownerEmail, srcYear, srcSemester, srcIndex)
	}

	schedule, err := s.GetOrCreate(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	moved, err := models.MoveCourse(schedule, srcYear, srcSemester, srcIndex, dstYear, dstSemester, dstIndex)
	if err != nil {
		return nil, err
	}

	s.persist(ctx, ownerEmail, moved)
	return moved, nil
}

// Remove drops the placement at the given slot.
func (s *ScheduleService) Remove(ctx context.Context, ownerEmail string, year, semester, index int) (*models.Schedule, error) {
	schedule, err := s.GetOrCreate(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	removed, err := models.RemoveCourse(schedule, year, semester, index)
	if err != nil {
		return nil, err
	}

	s.persist(ctx, ownerEmail, removed)
	return removed, nil
}

// AddCourses places catalog courses greedily and reports how many could not
// be placed once every semester slot was exhausted.
func (s *ScheduleService) AddCourses(ctx context.Context, ownerEmail string, courses []models.Course) (*models.Schedule, int, error) {
	schedule, err := s.GetOrCreate(ctx, ownerEmail)
	if err != nil {
		return nil, 0, err
	}

	added, unplaced := models.AddCourses(schedule, courses)

	s.persist(ctx, ownerEmail, added)
	return added, len(unplaced), nil
}

// Replace swaps the owner's entire schedule for a generated plan. Partial or
// invariant-violating plans are rejected; nothing is persisted in that case.
func (s *ScheduleService) Replace(ctx context.Context, ownerEmail string, years []models.Year) (*models.Schedule, error) {
	if _, err := s.users.GetByEmail(ctx, ownerEmail); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("error resolving schedule owner: %w", err)
	}

	replaced, err := models.FromYears(ownerEmail, years)
	if err != nil {
		return nil, err
	}

	s.persist(ctx, ownerEmail, replaced)
	return replaced, nil
}

// IsPlaced reports whether a course code is already placed in the owner's
// schedule. Used by course search to prevent duplicate placement.
func (s *ScheduleService) IsPlaced(ctx context.Context, ownerEmail, code string) (bool, error) {
	schedule, err := s.GetOrCreate(ctx, ownerEmail)
	if err != nil {
		return false, err
	}
	return models.IsPlaced(schedule, code), nil
}

// persist saves an accepted mutation. Persistence failures do not roll back
// the mutation: the result is returned to the caller and the store keeps
// its last successfully saved state.
func (s *ScheduleService) persist(ctx context.Context, ownerEmail string, schedule *models.Schedule) {
	if err := s.store.Save(ctx, ownerEmail, schedule); err != nil {
		s.logger.Error().
			Err(err).
			Str("owner", ownerEmail).
			Msg("Failed to persist schedule, in-memory result kept")
	}
}
