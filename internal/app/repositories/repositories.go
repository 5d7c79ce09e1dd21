package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	TokenRepository       *TokenRepository
	CandidateRepository   *CandidateRepository
	RecruiterRepository   *RecruiterRepository
	JobRepository         *JobRepository
	ApplicationRepository *ApplicationRepository
	SavedJobRepository    *SavedJobRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		TokenRepository:       NewTokenRepository(db),
		CandidateRepository:   NewCandidateRepository(db),
		RecruiterRepository:   NewRecruiterRepository(db),
		JobRepository:         NewJobRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		SavedJobRepository:    NewSavedJobRepository(db),
	}
}
