package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the database-backed repository instances
type Repositories struct {
	UserRepository     *UserRepository
	ScheduleRepository *ScheduleRepository
}

// NewRepositories creates all repositories with a shared connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		ScheduleRepository: NewScheduleRepository(db),
	}
}
