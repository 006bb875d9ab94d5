package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/alumnet/internal/app/models"
)

// IUserRepository defines the interface for user account storage
type IUserRepository interface {
	// Create inserts the user. Alumni also get an empty profile in the same transaction.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, role models.Role) ([]*models.User, error)
	ListPendingAlumni(ctx context.Context) ([]*models.User, error)
	UpdateAccount(ctx context.Context, id int64, name, email string) (*models.User, error)
	Approve(ctx context.Context, id int64) (*models.User, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.UserStats, error)
}

// IAlumniProfileRepository defines the interface for alumni profile storage
type IAlumniProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.AlumniProfile, error)
	GetDirectoryEntry(ctx context.Context, userID int64) (*models.AlumniDirectoryEntry, error)
	List(ctx context.Context, filter models.AlumniFilter) ([]*models.AlumniDirectoryEntry, error)
	Search(ctx context.Context, query string) ([]*models.AlumniDirectoryEntry, error)
	ListMentors(ctx context.Context) ([]*models.AlumniDirectoryEntry, error)
	Upsert(ctx context.Context, profile *models.AlumniProfile) error
	ToggleMentor(ctx context.Context, userID int64) (bool, error)
}

// IMentorshipRepository defines the interface for mentorship request storage
type IMentorshipRepository interface {
	// Create fails with apperrors.ErrMentorshipRequestExists when the pair already has a request.
	Create(ctx context.Context, req *models.MentorshipRequest) error
	GetByID(ctx context.Context, id int64) (*models.MentorshipRequest, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.SentMentorshipRequest, error)
	ListByAlumni(ctx context.Context, alumniID int64) ([]*models.ReceivedMentorshipRequest, error)
	// UpdateStatusIfPending fails with apperrors.ErrInvalidStatusTransition when the
	// request is no longer pending at write time.
	UpdateStatusIfPending(ctx context.Context, id, alumniID int64, status models.MentorshipStatus) (*models.MentorshipRequest, error)
	// DeleteForParticipant reports whether a request with id involving userID was removed.
	DeleteForParticipant(ctx context.Context, id, userID int64) (bool, error)
	Stats(ctx context.Context) (*models.MentorshipStats, error)
}

// IJobRepository defines the interface for job posting storage
type IJobRepository interface {
	Create(ctx context.Context, job *models.JobPosting) error
	GetByID(ctx context.Context, id int64) (*models.JobListing, error)
	ListActive(ctx context.Context, filter models.JobFilter) ([]*models.JobListing, error)
	Search(ctx context.Context, query string) ([]*models.JobListing, error)
	ListByAlumni(ctx context.Context, alumniID int64) ([]*models.JobPosting, error)
	Update(ctx context.Context, job *models.JobPosting) error
	ToggleActive(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.JobStats, error)
}

// IAnnouncementRepository defines the interface for announcement storage
type IAnnouncementRepository interface {
	Create(ctx context.Context, a *models.Announcement) error
	GetByID(ctx context.Context, id int64) (*models.Announcement, error)
	// List returns newest first. A nil audiences slice disables filtering; limit 0 returns all.
	List(ctx context.Context, audiences []models.Audience, limit int) ([]*models.Announcement, error)
	Update(ctx context.Context, a *models.Announcement) error
	Delete(ctx context.Context, id int64) error
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	AlumniProfileRepository *AlumniProfileRepository
	MentorshipRepository    *MentorshipRepository
	JobRepository           *JobRepository
	AnnouncementRepository  *AnnouncementRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		AlumniProfileRepository: NewAlumniProfileRepository(db),
		MentorshipRepository:    NewMentorshipRepository(db),
		JobRepository:           NewJobRepository(db),
		AnnouncementRepository:  NewAnnouncementRepository(db),
	}
}
