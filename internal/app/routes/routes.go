package routes

import (
	"github.com/gin-gonic/gin"
	appauth "github.com/yigit/alumnet/internal/app/auth"
	"github.com/yigit/alumnet/internal/app/controllers"
	"github.com/yigit/alumnet/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth         *controllers.AuthController
	User         *controllers.UserController
	Alumni       *controllers.AlumniController
	Mentorship   *controllers.MentorshipController
	Job          *controllers.JobController
	Announcement *controllers.AnnouncementController
	Health       *controllers.HealthController
}

// SetupRouter configures all application routes under /api.
// Every route behind the auth gate names the policy it requires.
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	authRateLimit middleware.RateLimitConfig,
) {
	api := router.Group("/api")

	api.GET("/health", ctrl.Health.Health)

	require := authMiddleware.Require

	// --- Public auth routes, rate limited per client IP ---
	auth := api.Group("/auth")
	{
		limited := auth.Group("", middleware.RateLimitByIP(authRateLimit))
		limited.POST("/register", ctrl.Auth.Register)
		limited.POST("/login", ctrl.Auth.Login)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("", authMiddleware.Authenticate())

	me := authenticated.Group("/auth")
	{
		me.GET("/me", require(appauth.Authenticated), ctrl.Auth.Me)
		me.PUT("/me", require(appauth.ApprovedAny), ctrl.Auth.UpdateMe)
		me.POST("/logout", require(appauth.Authenticated), ctrl.Auth.Logout)
	}

	users := authenticated.Group("/users", require(appauth.Admin))
	{
		users.GET("", ctrl.User.ListUsers)
		users.GET("/stats", ctrl.User.Stats)
		users.GET("/pending", ctrl.User.ListPendingAlumni)
		users.GET("/:id", ctrl.User.GetUserByID)
		users.PATCH("/:id/approve", ctrl.User.ApproveUser)
		users.PUT("/:id", ctrl.User.UpdateUser)
		users.DELETE("/:id", ctrl.User.DeleteUser)
	}

	alumni := authenticated.Group("/alumni")
	{
		alumni.GET("", require(appauth.Authenticated), ctrl.Alumni.List)
		alumni.GET("/search", require(appauth.Authenticated), ctrl.Alumni.Search)
		alumni.GET("/mentors", require(appauth.Authenticated), ctrl.Alumni.ListMentors)
		alumni.GET("/user/:userId", require(appauth.Authenticated), ctrl.Alumni.GetByUserID)

		alumni.GET("/profile/me", require(appauth.Alumni), ctrl.Alumni.GetMyProfile)
		alumni.PUT("/profile/me", require(appauth.ApprovedAlumni), ctrl.Alumni.UpdateMyProfile)
		alumni.PATCH("/mentor/toggle", require(appauth.ApprovedAlumni), ctrl.Alumni.ToggleMentor)
	}

	mentorship := authenticated.Group("/mentorship")
	{
		mentorship.POST("", require(appauth.Student), ctrl.Mentorship.Create)
		mentorship.GET("/my-requests", require(appauth.Student), ctrl.Mentorship.ListSent)
		mentorship.GET("/received", require(appauth.ApprovedAlumni), ctrl.Mentorship.ListReceived)
		mentorship.GET("/stats", require(appauth.Admin), ctrl.Mentorship.Stats)
		mentorship.PATCH("/:id/status", require(appauth.ApprovedAlumni), ctrl.Mentorship.UpdateStatus)
		mentorship.DELETE("/:id", require(appauth.ApprovedAny), ctrl.Mentorship.Delete)
	}

	announcements := authenticated.Group("/announcements")
	{
		announcements.GET("", require(appauth.Authenticated), ctrl.Announcement.List)
		announcements.GET("/recent", require(appauth.Authenticated), ctrl.Announcement.Recent)
		announcements.GET("/:id", require(appauth.Authenticated), ctrl.Announcement.GetByID)
		announcements.POST("", require(appauth.Admin), ctrl.Announcement.Create)
		announcements.PUT("/:id", require(appauth.Admin), ctrl.Announcement.Update)
		announcements.DELETE("/:id", require(appauth.Admin), ctrl.Announcement.Delete)
	}

	jobs := authenticated.Group("/jobs")
	{
		jobs.GET("", require(appauth.Authenticated), ctrl.Job.ListActive)
		jobs.GET("/search", require(appauth.Authenticated), ctrl.Job.Search)
		jobs.GET("/my/jobs", require(appauth.Alumni), ctrl.Job.ListMine)
		jobs.GET("/admin/stats", require(appauth.Admin), ctrl.Job.Stats)
		jobs.GET("/:id", require(appauth.Authenticated), ctrl.Job.GetByID)
		jobs.POST("", require(appauth.ApprovedAlumni), ctrl.Job.Create)
		jobs.PUT("/:id", require(appauth.ApprovedAlumni), ctrl.Job.Update)
		jobs.PATCH("/:id/toggle", require(appauth.ApprovedAlumni), ctrl.Job.ToggleActive)
		jobs.DELETE("/:id", require(appauth.ApprovedAny), ctrl.Job.Delete)
	}

	router.NoRoute(middleware.NotFoundHandler())
}
