package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/alumnet/internal/app/repositories"
	"github.com/yigit/alumnet/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService         *AuthService
	UserService         UserService
	AlumniService       AlumniService
	MentorshipService   MentorshipService
	JobService          JobService
	AnnouncementService AnnouncementService
}

// NewServices wires every service to its repositories
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, repos.AlumniProfileRepository,
			jwtService, blacklist, logger.With().Str("component", "auth").Logger()),
		UserService:   NewUserService(repos.UserRepository, logger.With().Str("component", "users").Logger()),
		AlumniService: NewAlumniService(repos.AlumniProfileRepository, logger.With().Str("component", "alumni").Logger()),
		MentorshipService: NewMentorshipService(repos.MentorshipRepository, repos.UserRepository,
			repos.AlumniProfileRepository, logger.With().Str("component", "mentorship").Logger()),
		JobService:          NewJobService(repos.JobRepository, logger.With().Str("component", "jobs").Logger()),
		AnnouncementService: NewAnnouncementService(repos.AnnouncementRepository, logger.With().Str("component", "announcements").Logger()),
	}
}
