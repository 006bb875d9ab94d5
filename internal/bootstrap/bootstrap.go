package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/alumnet/internal/app/controllers"
	appMigrations "github.com/yigit/alumnet/internal/app/migrations"
	appRepos "github.com/yigit/alumnet/internal/app/repositories"
	appRoutes "github.com/yigit/alumnet/internal/app/routes"
	appServices "github.com/yigit/alumnet/internal/app/services"
	"github.com/yigit/alumnet/internal/config"
	"github.com/yigit/alumnet/internal/db"
	appMiddleware "github.com/yigit/alumnet/internal/middleware"
	pkgAuth "github.com/yigit/alumnet/internal/pkg/auth"
	"github.com/yigit/alumnet/internal/pkg/helpers"
	"github.com/yigit/alumnet/internal/pkg/logger"
	"github.com/yigit/alumnet/internal/pkg/validation"
	"github.com/yigit/alumnet/internal/seed"
)

// DefaultConfigPath is where the YAML configuration is looked up
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	Blacklist      pkgAuth.TokenBlacklist
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.Logging.Format == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations when
// configured to and provisions the configured admin account.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	if cfg.Database.MigrateOnStart {
		if err := RunMigrations(dbPool, lgr); err != nil {
			dbPool.Close()
			return nil, err
		}
	}

	if cfg.Admin.Email != "" {
		account := seed.AdminAccount{Name: cfg.Admin.Name, Email: cfg.Admin.Email, Password: cfg.Admin.Password}
		if _, err := seed.EnsureAdmin(ctx, appRepos.NewUserRepository(dbPool), account, lgr); err != nil {
			// The API still serves existing accounts without a provisioned admin.
			lgr.Error().Err(err).Msg("Failed to provision admin account, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// RunMigrations applies the embedded schema migrations
func RunMigrations(dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	migrator, err := appMigrations.NewMigrator(dbPool, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to prepare migrations")
		return err
	}
	if err := migrator.Up(); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	return nil
}

// SetupTokenBlacklist connects to Redis when enabled. Without Redis, revoked
// tokens are kept in process memory and forgotten on restart.
func SetupTokenBlacklist(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (pkgAuth.TokenBlacklist, *redis.Client, error) {
	if !cfg.Redis.Enabled {
		lgr.Warn().Msg("Redis disabled, using in-memory token blacklist")
		return pkgAuth.NewMemoryTokenBlacklist(), nil, nil
	}

	client, err := db.NewRedisClient(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Str("addr", cfg.GetRedisAddr()).Msg("Failed to connect to redis")
		return nil, nil, err
	}
	lgr.Info().Str("addr", cfg.GetRedisAddr()).Msg("Redis connection established")
	return pkgAuth.NewRedisTokenBlacklist(client), client, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(
	cfg *config.Config,
	dbPool *pgxpool.Pool,
	blacklist pkgAuth.TokenBlacklist,
	redisClient *redis.Client,
	lgr zerolog.Logger,
) *Dependencies {
	deps := &Dependencies{Logger: lgr, Blacklist: blacklist}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 7*24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, blacklist, lgr)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, blacklist, deps.Repos.UserRepository)

	checks := map[string]appControllers.HealthCheck{
		"database": dbPool.Ping,
	}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	deps.Controllers = appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(deps.Services.AuthService, lgr),
		User:         appControllers.NewUserController(deps.Services.UserService, lgr),
		Alumni:       appControllers.NewAlumniController(deps.Services.AlumniService, lgr),
		Mentorship:   appControllers.NewMentorshipController(deps.Services.MentorshipService, lgr),
		Job:          appControllers.NewJobController(deps.Services.JobService, lgr),
		Announcement: appControllers.NewAnnouncementController(deps.Services.AnnouncementService, lgr),
		Health:       appControllers.NewHealthController(checks, lgr),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterRules(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestLogger(lgr),
		gin.Recovery(),
		appMiddleware.CORS(appMiddleware.DefaultCORSConfig(cfg.Server.AllowedOrigins)),
		appMiddleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, appMiddleware.RateLimitConfig{
		RequestsPerWindow: cfg.RateLimit.AuthRequests,
		Window:            helpers.ParseDuration(cfg.RateLimit.AuthWindow, time.Minute),
		Burst:             cfg.RateLimit.AuthBurst,
	})

	return router, nil
}
