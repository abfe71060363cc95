package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/denizyilmaz/plansphere/internal/app/models"
	"github.com/denizyilmaz/plansphere/internal/pkg/apperrors"
)

// Schedule error types
var (
	ErrScheduleNotFound = apperrors.ErrScheduleNotFound
)

// ScheduleRepository persists schedule documents keyed by owner email. The
// whole plan is stored as one JSONB document and replaced on every save;
// concurrent writers are resolved last-write-wins by design.
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
	}
}

// Load retrieves the schedule for an owner. Returns ErrScheduleNotFound when
// the owner has never saved one.
func (r *ScheduleRepository) Load(ctx context.Context, ownerEmail string) (*models.Schedule, error) {
	query := `
		SELECT plan
		FROM schedules
		WHERE owner_email = $1
	`

	var raw []byte
	err := r.db.QueryRow(ctx, query, ownerEmail).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewCustomError(ErrScheduleNotFound, "no stored schedule for "+ownerEmail)
		}
		return nil, fmt.Errorf("error retrieving schedule: %w", err)
	}

	var schedule models.Schedule
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return nil, fmt.Errorf("error decoding stored schedule: %w", err)
	}
	schedule.OwnerEmail = ownerEmail

	return &schedule, nil
}

// Save upserts the schedule document for its owner.
func (r *ScheduleRepository) Save(ctx context.Context, ownerEmail string, schedule *models.Schedule) error {
	raw, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("error encoding schedule: %w", err)
	}

	query := `
		INSERT INTO schedules (owner_email, plan, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (owner_email)
		DO UPDATE SET plan = EXCLUDED.plan, updated_at = CURRENT_TIMESTAMP
	`

	_, err = r.db.Exec(ctx, query, ownerEmail, raw)
	if err != nil {
		return fmt.Errorf("error saving schedule: %w", err)
	}

	return nil
}
