// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/app/repositories"
)

var (
	_ repositories.IUserRepository          = (*MockUserRepository)(nil)
	_ repositories.IAlumniProfileRepository = (*MockAlumniProfileRepository)(nil)
	_ repositories.IMentorshipRepository    = (*MockMentorshipRepository)(nil)
	_ repositories.IJobRepository           = (*MockJobRepository)(nil)
	_ repositories.IAnnouncementRepository  = (*MockAnnouncementRepository)(nil)
)

// MockUserRepository is a mock implementation of repositories.IUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, role models.Role) ([]*models.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) ListPendingAlumni(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateAccount(ctx context.Context, id int64, name, email string) (*models.User, error) {
	args := m.Called(ctx, id, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Approve(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Stats(ctx context.Context) (*models.UserStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStats), args.Error(1)
}

// MockAlumniProfileRepository is a mock implementation of repositories.IAlumniProfileRepository
type MockAlumniProfileRepository struct {
	mock.Mock
}

func (m *MockAlumniProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.AlumniProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AlumniProfile), args.Error(1)
}

func (m *MockAlumniProfileRepository) GetDirectoryEntry(ctx context.Context, userID int64) (*models.AlumniDirectoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AlumniDirectoryEntry), args.Error(1)
}

func (m *MockAlumniProfileRepository) List(ctx context.Context, filter models.AlumniFilter) ([]*models.AlumniDirectoryEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AlumniDirectoryEntry), args.Error(1)
}

func (m *MockAlumniProfileRepository) Search(ctx context.Context, query string) ([]*models.AlumniDirectoryEntry, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AlumniDirectoryEntry), args.Error(1)
}

func (m *MockAlumniProfileRepository) ListMentors(ctx context.Context) ([]*models.AlumniDirectoryEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AlumniDirectoryEntry), args.Error(1)
}

func (m *MockAlumniProfileRepository) Upsert(ctx context.Context, profile *models.AlumniProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockAlumniProfileRepository) ToggleMentor(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// MockMentorshipRepository is a mock implementation of repositories.IMentorshipRepository
type MockMentorshipRepository struct {
	mock.Mock
}

func (m *MockMentorshipRepository) Create(ctx context.Context, req *models.MentorshipRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockMentorshipRepository) GetByID(ctx context.Context, id int64) (*models.MentorshipRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipRequest), args.Error(1)
}

func (m *MockMentorshipRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.SentMentorshipRequest, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SentMentorshipRequest), args.Error(1)
}

func (m *MockMentorshipRepository) ListByAlumni(ctx context.Context, alumniID int64) ([]*models.ReceivedMentorshipRequest, error) {
	args := m.Called(ctx, alumniID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ReceivedMentorshipRequest), args.Error(1)
}

func (m *MockMentorshipRepository) UpdateStatusIfPending(ctx context.Context, id, alumniID int64, status models.MentorshipStatus) (*models.MentorshipRequest, error) {
	args := m.Called(ctx, id, alumniID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipRequest), args.Error(1)
}

func (m *MockMentorshipRepository) DeleteForParticipant(ctx context.Context, id, userID int64) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMentorshipRepository) Stats(ctx context.Context) (*models.MentorshipStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipStats), args.Error(1)
}

// MockJobRepository is a mock implementation of repositories.IJobRepository
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, job *models.JobPosting) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) GetByID(ctx context.Context, id int64) (*models.JobListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobListing), args.Error(1)
}

func (m *MockJobRepository) ListActive(ctx context.Context, filter models.JobFilter) ([]*models.JobListing, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.JobListing), args.Error(1)
}

func (m *MockJobRepository) Search(ctx context.Context, query string) ([]*models.JobListing, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.JobListing), args.Error(1)
}

func (m *MockJobRepository) ListByAlumni(ctx context.Context, alumniID int64) ([]*models.JobPosting, error) {
	args := m.Called(ctx, alumniID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.JobPosting), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, job *models.JobPosting) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) ToggleActive(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockJobRepository) Stats(ctx context.Context) (*models.JobStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobStats), args.Error(1)
}

// MockAnnouncementRepository is a mock implementation of repositories.IAnnouncementRepository
type MockAnnouncementRepository struct {
	mock.Mock
}

func (m *MockAnnouncementRepository) Create(ctx context.Context, a *models.Announcement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) List(ctx context.Context, audiences []models.Audience, limit int) ([]*models.Announcement, error) {
	args := m.Called(ctx, audiences, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) Update(ctx context.Context, a *models.Announcement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
